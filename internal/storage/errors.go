package storage

import (
	"fmt"

	dErrors "rolodex/pkg/domain-errors"
)

var (
	// ErrNilBook keeps the nil-save guard consistent across file, sqlite
	// and in-memory implementations.
	ErrNilBook = dErrors.New(dErrors.CodeInvariantViolation, "cannot save a nil address book")
)

// corruptSnapshot marks stored data that no longer decodes. The path tells
// the user which file to inspect or remove.
func corruptSnapshot(path string, err error) error {
	return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("snapshot %s is corrupt", path))
}
