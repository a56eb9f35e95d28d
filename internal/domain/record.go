package domain

import (
	"fmt"
	"strings"
)

// Record is a contact entry: one Name plus an ordered list of phones.
// Duplicates are allowed. The Record owns its phones; accessors return copies.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord builds a Record with no phones. It fails exactly when NewName fails.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n, phones: []Phone{}}, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a snapshot of the phones in order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// PhoneValues is Phones mapped to their raw text.
func (r *Record) PhoneValues() []string {
	out := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		out = append(out, p.value)
	}
	return out
}

// AddPhone validates raw and appends it. On error the phones are unchanged.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to raw. raw is not validated; no match is a no-op.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != raw {
			kept = append(kept, p)
		}
	}
	// Clear the tail so removed values are not retained by the backing array.
	for i := len(kept); i < len(r.phones); i++ {
		r.phones[i] = Phone{}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, in place.
// newRaw is validated before searching, so an invalid replacement fails even
// when oldRaw is absent. A missing oldRaw is a silent no-op.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].value == oldRaw {
			r.phones[i] = p
			return nil
		}
	}
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == raw {
			return p, true
		}
	}
	return Phone{}, false
}

func (r *Record) String() string {
	return fmt.Sprintf("Ім'я контакту: %s, телефони: %s", r.name.value, strings.Join(r.PhoneValues(), "; "))
}
