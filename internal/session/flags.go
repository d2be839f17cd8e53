// Package session holds state that lives exactly as long as one process:
// "shown this session" markers and the session id attached to log lines.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/kv/memory"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
)

const flagSet = "true"

// Flags is the process-wide flag object. Create one with Start when the
// app starts and Close it on exit; nothing written here outlives it.
type Flags struct {
	id    string
	store *daily.Store

	mu     sync.Mutex
	closed bool
}

// Start opens a new session with a fresh id.
func Start() *Flags {
	return &Flags{
		id:    uuid.NewString(),
		store: daily.NewStore(memory.New()),
	}
}

// ID returns the session id. main hands it to logger.Init so every log line
// carries it.
func (f *Flags) ID() string {
	return f.id
}

// MarkOnce sets key and reports whether this call was the one that set it.
func (f *Flags) MarkOnce(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	if v, ok := f.store.Read(key); ok && v == flagSet {
		return false
	}
	f.store.Write(key, flagSet)
	logger.Debug("Session flag set", "key", key)
	return true
}

// Close ends the session. Afterwards every flag reads as unset and writes
// are ignored.
func (f *Flags) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.store = nil
	logger.Debug("Session closed")
}
