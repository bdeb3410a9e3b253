// Package storage provides the durable namespaced key-value store backing
// the session record and the cookie table.
package storage

// KV is interface-driven to keep the session components testable and to
// allow swapping the sqlite file for an in-memory table without rewiring
// business code. Every write is durable before the call returns; there is
// no batching or async flush.
type KV interface {
	// Get returns the value for key in ns, and whether it exists.
	Get(ns, key string) (string, bool, error)

	// Put stores value under key in ns, replacing any previous value.
	Put(ns, key, value string) error

	// Delete removes key from ns. Deleting an absent key is not an error.
	Delete(ns, key string) error

	// All returns every key/value pair in ns.
	All(ns string) (map[string]string, error)

	// DeleteAll removes every key in ns.
	DeleteAll(ns string) error

	Close() error
}
