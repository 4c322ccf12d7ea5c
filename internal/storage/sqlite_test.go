package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"rolodex/internal/book"
	"rolodex/internal/domain"
)

type SQLiteStoreSuite struct {
	suite.Suite
	path  string
	store *SQLite
	ctx   context.Context
}

func (s *SQLiteStoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "rolodex.db")
	store, err := OpenSQLite(s.path)
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *SQLiteStoreSuite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func TestSQLiteStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite store tests in short mode")
	}
	suite.Run(t, new(SQLiteStoreSuite))
}

func (s *SQLiteStoreSuite) TestLoadFromFreshDatabase() {
	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, loaded.Len())
}

func (s *SQLiteStoreSuite) TestRoundTrip() {
	b := testBook(s.T())
	s.Require().NoError(s.store.Save(s.ctx, b))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	requireBooksEqual(s.T(), b, loaded)
}

func (s *SQLiteStoreSuite) TestSaveReplacesPreviousSnapshot() {
	s.Require().NoError(s.store.Save(s.ctx, testBook(s.T())))

	smaller := book.New()
	dan, err := domain.NewContact("Dan")
	s.Require().NoError(err)
	s.Require().NoError(dan.AddPhone("1231231231"))
	smaller.Add(dan)
	s.Require().NoError(s.store.Save(s.ctx, smaller))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	requireBooksEqual(s.T(), smaller, loaded)
}

// TestReopenKeepsData verifies the snapshot survives closing the database
// and opening it again, the actual persistence guarantee the backend is for.
func (s *SQLiteStoreSuite) TestReopenKeepsData() {
	b := testBook(s.T())
	s.Require().NoError(s.store.Save(s.ctx, b))
	s.Require().NoError(s.store.Close())

	reopened, err := OpenSQLite(s.path)
	s.Require().NoError(err)
	s.store = reopened

	loaded, err := reopened.Load(s.ctx)
	s.Require().NoError(err)
	requireBooksEqual(s.T(), b, loaded)
}

func (s *SQLiteStoreSuite) TestSaveNilBook() {
	s.Require().ErrorIs(s.store.Save(s.ctx, nil), ErrNilBook)
}
