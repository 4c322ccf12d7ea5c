// Package book holds the address book aggregate: an insertion-ordered,
// name-keyed collection of contacts and the queries that run across it.
package book

import (
	"rolodex/internal/domain"
)

// Book owns every contact the assistant knows about. Contacts are keyed
// by name and iterated in the order they were first added, so command
// output and snapshots are deterministic.
//
// Book is not safe for concurrent use. The REPL serializes access; any
// other host must do the same.
type Book struct {
	index    map[string]int
	contacts []*domain.Contact
}

func New() *Book {
	return &Book{index: make(map[string]int)}
}

// Add inserts the contact, or replaces the existing contact with the same
// name. A replacement keeps the original position; nothing is merged.
func (b *Book) Add(contact *domain.Contact) {
	if i, ok := b.index[contact.Name]; ok {
		b.contacts[i] = contact
		return
	}
	b.index[contact.Name] = len(b.contacts)
	b.contacts = append(b.contacts, contact)
}

// Find returns the contact with the given name. Absence is not an error.
func (b *Book) Find(name string) (*domain.Contact, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.contacts[i], true
}

// Delete removes the contact with the given name, if present. Later
// contacts shift down one position; re-adding the name appends at the end.
func (b *Book) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	b.contacts = append(b.contacts[:i], b.contacts[i+1:]...)
	delete(b.index, name)
	for j := i; j < len(b.contacts); j++ {
		b.index[b.contacts[j].Name] = j
	}
}

// Len returns the number of contacts in the book.
func (b *Book) Len() int {
	return len(b.contacts)
}

// Contacts returns the contacts in insertion order. The slice is a copy;
// the contacts themselves are shared.
func (b *Book) Contacts() []*domain.Contact {
	out := make([]*domain.Contact, len(b.contacts))
	copy(out, b.contacts)
	return out
}
