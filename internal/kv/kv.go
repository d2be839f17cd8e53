// Package kv defines the raw string key-value substrate that daily
// snapshots and flags are persisted to.
package kv

// Backend is a durable string key-value store. Implementations replace the
// whole value on Set and report a never-written key as ok == false.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)

	// Describe returns a non-sensitive identifier of where data lives.
	Describe() string
}
