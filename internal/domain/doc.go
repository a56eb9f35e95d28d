// Package domain contains the core contact directory model for Phonebook.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// terminal I/O, or the filesystem, and it never logs. Name and Phone are the only gates
// for their invariants; every error surfaces synchronously at construction time.
package domain
