package domain

import (
	"strings"
	"sync"
)

// EmptyDirectoryMessage is what an empty Directory renders as.
const EmptyDirectoryMessage = "Адресна книга порожня"

// Directory maps contact names to Records. Keys are unique and the last write
// wins; iteration follows first-insertion order.
type Directory struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// AddRecord stores r under its name, silently replacing any Record already
// there. A replaced name keeps its original position. Nil or zero-name records
// are ignored.
func (d *Directory) AddRecord(r *Record) {
	if r == nil || r.name.value == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	key := r.name.value
	if _, ok := d.records[key]; !ok {
		d.order = append(d.order, key)
	}
	d.records[key] = r
}

// Find returns the Record stored under name. Matching is exact.
func (d *Directory) Find(name string) (*Record, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, ok := d.records[name]
	return r, ok
}

// Delete removes the Record under name; absent names are a no-op.
func (d *Directory) Delete(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.records[name]; !ok {
		return
	}
	delete(d.records, name)
	for i, k := range d.order {
		if k == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.order)
}

// Names returns the stored names in iteration order.
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.order...)
}

// Records returns the stored records in iteration order.
func (d *Directory) Records() []*Record {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Record, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.records[k])
	}
	return out
}

func (d *Directory) String() string {
	recs := d.Records()
	if len(recs) == 0 {
		return EmptyDirectoryMessage
	}

	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
