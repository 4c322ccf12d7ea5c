// Package storage persists the address book as a whole snapshot. Nothing
// here interprets the data; contacts are re-validated through their domain
// constructors on the way back in, so a loaded book is as trustworthy as a
// freshly built one.
package storage

import (
	"context"

	"rolodex/internal/book"
)

// Store is interface-driven to keep the assistant testable and to allow
// swapping in-memory, file-based, or embedded-database persistence without
// rewiring the command layer.
//
// Load returns an empty book when nothing has been saved yet; a missing
// snapshot is a normal first run, not an error.
type Store interface {
	Load(ctx context.Context) (*book.Book, error)
	Save(ctx context.Context, b *book.Book) error
}
