package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"rolodex/internal/book"
	dErrors "rolodex/pkg/domain-errors"
)

// File stores the snapshot as a JSON array in a single local file. This is
// the default backend: the file is small, human-readable, and trivially
// backed up.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (s *File) Load(_ context.Context) (*book.Book, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read snapshot")
	}

	var records []contactRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, corruptSnapshot(s.path, err)
	}
	return restore(records)
}

// Save writes the whole book, replacing the previous snapshot. The data
// goes to a temporary file first and is renamed into place, so a crash
// mid-write leaves the old snapshot intact.
func (s *File) Save(_ context.Context, b *book.Book) error {
	if b == nil {
		return ErrNilBook
	}

	data, err := json.MarshalIndent(snapshotOf(b), "", "  ")
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode snapshot")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create snapshot directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create snapshot temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write snapshot")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to replace snapshot")
	}
	return nil
}
