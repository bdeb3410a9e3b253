package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// =============================================================================
// KV Contract Suite
// =============================================================================
// Both implementations must behave identically; the suite runs against a
// factory so the same assertions cover memory and sqlite.

type KVSuite struct {
	suite.Suite
	open func() KV
	kv   KV
}

func TestMemoryKV(t *testing.T) {
	suite.Run(t, &KVSuite{open: func() KV { return NewMemory() }})
}

func TestSQLiteKV(t *testing.T) {
	dir := t.TempDir()
	suite.Run(t, &KVSuite{open: func() KV {
		kv, err := OpenSQLite(filepath.Join(dir, "kv-test.db"))
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		return kv
	}})
}

func (s *KVSuite) SetupTest() {
	s.kv = s.open()
	s.Require().NoError(s.kv.DeleteAll("ns"))
	s.Require().NoError(s.kv.DeleteAll("other"))
}

func (s *KVSuite) TearDownTest() {
	s.Require().NoError(s.kv.Close())
}

func (s *KVSuite) TestGetPut() {
	s.Run("absent key reads as missing", func() {
		_, ok, err := s.kv.Get("ns", "missing")
		s.NoError(err)
		s.False(ok)
	})

	s.Run("put then get round-trips", func() {
		s.Require().NoError(s.kv.Put("ns", "k", "v1"))
		v, ok, err := s.kv.Get("ns", "k")
		s.NoError(err)
		s.True(ok)
		s.Equal("v1", v)
	})

	s.Run("put replaces previous value", func() {
		s.Require().NoError(s.kv.Put("ns", "k", "v1"))
		s.Require().NoError(s.kv.Put("ns", "k", "v2"))
		v, _, err := s.kv.Get("ns", "k")
		s.NoError(err)
		s.Equal("v2", v)
	})

	s.Run("namespaces are independent", func() {
		s.Require().NoError(s.kv.Put("ns", "k", "a"))
		s.Require().NoError(s.kv.Put("other", "k", "b"))
		v, _, _ := s.kv.Get("ns", "k")
		s.Equal("a", v)
		v, _, _ = s.kv.Get("other", "k")
		s.Equal("b", v)
	})
}

func (s *KVSuite) TestDelete() {
	s.Require().NoError(s.kv.Put("ns", "k", "v"))
	s.Require().NoError(s.kv.Delete("ns", "k"))
	_, ok, err := s.kv.Get("ns", "k")
	s.NoError(err)
	s.False(ok)

	// Deleting again is not an error.
	s.NoError(s.kv.Delete("ns", "k"))
}

func (s *KVSuite) TestAll() {
	s.Require().NoError(s.kv.Put("ns", "a", "1"))
	s.Require().NoError(s.kv.Put("ns", "b", "2"))
	s.Require().NoError(s.kv.Put("other", "c", "3"))

	all, err := s.kv.All("ns")
	s.NoError(err)
	s.Equal(map[string]string{"a": "1", "b": "2"}, all)
}

func (s *KVSuite) TestDeleteAll() {
	s.Require().NoError(s.kv.Put("ns", "a", "1"))
	s.Require().NoError(s.kv.Put("other", "c", "3"))
	s.Require().NoError(s.kv.DeleteAll("ns"))

	all, err := s.kv.All("ns")
	s.NoError(err)
	s.Empty(all)

	v, ok, _ := s.kv.Get("other", "c")
	s.True(ok)
	s.Equal("3", v)
}

// =============================================================================
// Durability
// =============================================================================

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Put("session", "user_id", "42"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	kv, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()

	v, ok, err := kv.Get("session", "user_id")
	if err != nil || !ok || v != "42" {
		t.Fatalf("expected 42 after reopen, got %q ok=%v err=%v", v, ok, err)
	}
}
