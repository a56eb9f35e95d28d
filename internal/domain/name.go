package domain

import "unicode/utf8"

// Name identifies a contact. The zero value is not a valid Name; use NewName.
type Name struct {
	value string
}

// NewName validates raw and wraps it. Trimming is the caller's job: "  " is a valid name.
func NewName(raw string) (Name, error) {
	if raw == "" || !utf8.ValidString(raw) {
		return Name{}, &OpError{
			Op:   "domain.new_name",
			Kind: KindInvalidName,
			Err:  ErrInvalidName,
		}
	}
	return Name{value: raw}, nil
}

// Value returns the raw text the Name was built from.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }
