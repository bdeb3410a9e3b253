package session

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"tienda/internal/platform/storage"
)

// =============================================================================
// Session Store Suite
// =============================================================================

type StoreSuite struct {
	suite.Suite
	kv    *storage.Memory
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.kv = storage.NewMemory()
	s.store = NewStore(s.kv)
}

func (s *StoreSuite) TestDefaultsToUnauthenticated() {
	s.False(s.store.Authenticated())

	_, ok := s.store.UserID()
	s.False(ok)
	_, ok = s.store.UserEmail()
	s.False(ok)
}

func (s *StoreSuite) TestMarkAuthenticated() {
	s.Require().NoError(s.store.MarkAuthenticated(42, "a@b.com"))

	s.True(s.store.Authenticated())
	id, ok := s.store.UserID()
	s.True(ok)
	s.Equal(42, id)
	email, ok := s.store.UserEmail()
	s.True(ok)
	s.Equal("a@b.com", email)
}

func (s *StoreSuite) TestClear() {
	s.Require().NoError(s.store.MarkAuthenticated(42, "a@b.com"))
	s.Require().NoError(s.store.Clear())

	s.False(s.store.Authenticated())
	_, ok := s.store.UserID()
	s.False(ok, "cleared store must never return a stale id")
}

func (s *StoreSuite) TestSurvivesRestart() {
	s.Require().NoError(s.store.MarkAuthenticated(7, "x@y.mx"))

	// A new store over the same KV simulates a process restart.
	reborn := NewStore(s.kv)
	s.True(reborn.Authenticated())
	id, ok := reborn.UserID()
	s.True(ok)
	s.Equal(7, id)
}

func (s *StoreSuite) TestClearSurvivesRestart() {
	s.Require().NoError(s.store.MarkAuthenticated(7, "x@y.mx"))
	s.Require().NoError(s.store.Clear())

	reborn := NewStore(s.kv)
	s.False(reborn.Authenticated())
}

func (s *StoreSuite) TestCorruptUserIDReadsAsUnauthenticated() {
	s.Require().NoError(s.kv.Put("session", "authenticated", "true"))
	s.Require().NoError(s.kv.Put("session", "user_id", "not-a-number"))

	reborn := NewStore(s.kv)
	s.False(reborn.Authenticated())
}

// =============================================================================
// Subscriptions
// =============================================================================

func (s *StoreSuite) TestSubscribeDeliversCurrentValueImmediately() {
	s.Require().NoError(s.store.MarkAuthenticated(1, "a@b.com"))

	ch, cancel := s.store.Subscribe()
	defer cancel()

	rec := <-ch
	s.True(rec.Authenticated)
	s.Equal(1, rec.UserID)
}

func (s *StoreSuite) TestSubscribeObservesChanges() {
	ch, cancel := s.store.Subscribe()
	defer cancel()

	first := <-ch
	s.False(first.Authenticated)

	s.Require().NoError(s.store.MarkAuthenticated(9, "c@d.com"))
	second := <-ch
	s.True(second.Authenticated)
	s.Equal("c@d.com", second.UserEmail)

	s.Require().NoError(s.store.Clear())
	third := <-ch
	s.False(third.Authenticated)
}

func (s *StoreSuite) TestCancelClosesChannel() {
	ch, cancel := s.store.Subscribe()
	<-ch
	cancel()

	_, open := <-ch
	s.False(open)

	// Cancelling twice is harmless.
	cancel()
}
