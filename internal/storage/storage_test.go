package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rolodex/internal/book"
	"rolodex/internal/domain"
)

// testBook builds a book that exercises everything a snapshot must carry:
// phone order, duplicate phones, set and unset birthdays, and a contact
// with no phones at all.
func testBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()

	alice, err := domain.NewContact("Alice")
	require.NoError(t, err)
	require.NoError(t, alice.AddPhone("1234567890"))
	require.NoError(t, alice.AddPhone("5555555555"))
	require.NoError(t, alice.AddPhone("1234567890"))
	require.NoError(t, alice.AddBirthday("01.06.2020"))
	b.Add(alice)

	bob, err := domain.NewContact("Bob")
	require.NoError(t, err)
	require.NoError(t, bob.AddPhone("9999999999"))
	b.Add(bob)

	carol, err := domain.NewContact("Carol")
	require.NoError(t, err)
	require.NoError(t, carol.AddBirthday("29.02.2020"))
	b.Add(carol)

	return b
}

// requireBooksEqual compares two books through their serialized form,
// which covers order, phones, and birthdays in one assertion.
func requireBooksEqual(t *testing.T, want, got *book.Book) {
	t.Helper()
	require.Equal(t, snapshotOf(want), snapshotOf(got))
}
