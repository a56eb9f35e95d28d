package domain

import "regexp"

// Exactly ten ASCII digits; RE2's \d never matches non-ASCII digits.
var rePhone = regexp.MustCompile(`^\d{10}$`)

// Phone is a ten-digit phone number. It is immutable: editing a phone means
// replacing it with a new Phone.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	if !rePhone.MatchString(raw) {
		return Phone{}, &OpError{
			Op:   "domain.new_phone",
			Kind: KindInvalidPhone,
			Err:  ErrInvalidPhone,
		}
	}
	return Phone{value: raw}, nil
}

func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }
