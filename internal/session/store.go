// Package session is the single source of truth for "who, if anyone, is
// logged in". The record is durable: every mutation hits local storage
// before observers see the new state.
package session

import (
	"strconv"
	"sync"

	"tienda/internal/platform/storage"
)

const (
	namespace = "session"

	keyAuthenticated = "authenticated"
	keyUserID        = "user_id"
	keyUserEmail     = "user_email"
)

// Record describes the current login identity. UserID and UserEmail are
// meaningful only while Authenticated is true.
type Record struct {
	Authenticated bool
	UserID        int
	UserEmail     string
}

// Store holds the session record, persists it on every mutation, and fans
// changes out to subscribers. Mutations are last-write-wins; callers re-read
// state after every operation completes.
type Store struct {
	mu   sync.Mutex
	kv   storage.KV
	cur  Record
	subs map[int]chan Record
	next int
}

// NewStore loads any previously persisted record. Absent or unreadable data
// reads as unauthenticated; startup never fails on a bad record.
func NewStore(kv storage.KV) *Store {
	s := &Store{kv: kv, subs: make(map[int]chan Record)}
	s.cur = load(kv)
	return s
}

func load(kv storage.KV) Record {
	flag, ok, err := kv.Get(namespace, keyAuthenticated)
	if err != nil || !ok || flag != "true" {
		return Record{}
	}

	rawID, _, err := kv.Get(namespace, keyUserID)
	if err != nil {
		return Record{}
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return Record{}
	}

	email, _, err := kv.Get(namespace, keyUserEmail)
	if err != nil {
		return Record{}
	}
	return Record{Authenticated: true, UserID: id, UserEmail: email}
}

// MarkAuthenticated unconditionally overwrites the record with the given
// identity. The write is durable before any subscriber is notified.
func (s *Store) MarkAuthenticated(userID int, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Put(namespace, keyAuthenticated, "true"); err != nil {
		return err
	}
	if err := s.kv.Put(namespace, keyUserID, strconv.Itoa(userID)); err != nil {
		return err
	}
	if err := s.kv.Put(namespace, keyUserEmail, email); err != nil {
		return err
	}

	s.cur = Record{Authenticated: true, UserID: userID, UserEmail: email}
	s.notifyLocked()
	return nil
}

// Clear unconditionally resets the record to unauthenticated and removes the
// identity fields from durable storage.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.DeleteAll(namespace); err != nil {
		return err
	}

	s.cur = Record{}
	s.notifyLocked()
	return nil
}

// Authenticated reports whether a user is currently logged in.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Authenticated
}

// UserID returns the logged-in user's id, or false when unauthenticated.
func (s *Store) UserID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.UserID, s.cur.Authenticated
}

// UserEmail returns the logged-in user's email, or false when unauthenticated.
func (s *Store) UserEmail() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.UserEmail, s.cur.Authenticated
}

// Current returns the whole record.
func (s *Store) Current() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Subscribe registers an observer. The current record is delivered
// immediately, then every subsequent change. The returned cancel func must
// be called when done; after cancel the channel is closed.
func (s *Store) Subscribe() (<-chan Record, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Record, 16)
	id := s.next
	s.next++
	s.subs[id] = ch
	ch <- s.cur

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// notifyLocked requires s.mu held. Slow subscribers drop updates rather than
// block a mutation; they re-sync on their next receive.
func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.cur:
		default:
		}
	}
}
