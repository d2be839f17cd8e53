package daily

import (
	"fmt"
	"sync"

	"github.com/chronox22/eco-gamer-collective/internal/errors"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
)

// Deriver decides, per key, whether today's value is the stored snapshot or
// a freshly generated one. Calls on one Deriver are serialized; writers in
// other processes are not coordinated and the last Set wins.
//
// Generators and mutators run with the Deriver locked and must not call
// back into it.
type Deriver struct {
	store *Store

	mu         sync.Mutex
	generators map[string]any         // key -> func() T
	held       map[string]heldPayload // payloads that could not be encoded
}

// heldPayload keeps a payload Encode rejected so the day's value stays
// stable for the life of the process.
type heldPayload struct {
	date    string
	payload any
}

// NewDeriver returns a Deriver persisting through store.
func NewDeriver(store *Store) *Deriver {
	return &Deriver{
		store:      store,
		generators: make(map[string]any),
		held:       make(map[string]heldPayload),
	}
}

// Store returns the underlying key store.
func (d *Deriver) Store() *Store {
	return d.store
}

// Register records generate as the generator for key, used by Mutate when
// there is no usable snapshot for today.
func Register[T any](d *Deriver, key string, generate func() T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generators[key] = generate
}

// GetOrCreate returns the stored payload for key when its snapshot belongs to
// today. Otherwise it calls generate, persists {today, payload} over whatever
// was stored and returns the new payload. generate also becomes the key's
// registered generator.
func GetOrCreate[T any](d *Deriver, key, today string, generate func() T) T {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generators[key] = generate
	return derive(d, key, today, generate)
}

// Mutate derives today's payload for key, applies mutator and writes the
// result back under the same day identity. If no snapshot for today exists
// it regenerates with the key's registered generator first, and fails with
// errors.ErrNoGenerator when there is none.
func Mutate[T any](d *Deriver, key, today string, mutator func(T) T) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := load[T](d, key, today)
	if !ok {
		gen, err := generatorFor[T](d, key)
		if err != nil {
			var zero T
			return zero, err
		}
		current = regenerate(d, key, today, gen)
	}

	next := mutator(current)
	persist(d, key, Snapshot[T]{Date: today, Payload: next})
	logger.Debug("Snapshot mutated", "key", key, "date", today)
	return next, nil
}

func generatorFor[T any](d *Deriver, key string) (func() T, error) {
	g, ok := d.generators[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrNoGenerator, key)
	}
	gen, ok := g.(func() T)
	if !ok {
		return nil, fmt.Errorf("%w: %q registered with %T", errors.ErrNoGenerator, key, g)
	}
	return gen, nil
}

// derive must be called with d.mu held.
func derive[T any](d *Deriver, key, today string, generate func() T) T {
	if payload, ok := load[T](d, key, today); ok {
		return payload
	}
	return regenerate(d, key, today, generate)
}

// load returns the stored payload when it is a valid snapshot for today.
func load[T any](d *Deriver, key, today string) (T, bool) {
	var zero T

	if h, ok := d.held[key]; ok {
		if p, typed := h.payload.(T); typed && h.date == today {
			logger.Debug("Unencodable payload reused", "key", key, "date", today)
			return p, true
		}
		delete(d.held, key)
	}

	raw, ok := d.store.Read(key)
	if !ok {
		logger.Debug("Snapshot absent", "key", key)
		return zero, false
	}

	snap, err := Decode[T](raw)
	if err != nil {
		logger.Debug("Snapshot corrupt, regenerating", "key", key, "error", err)
		return zero, false
	}
	if snap.Date != today {
		logger.Debug("Snapshot stale, regenerating", "key", key, "stored", snap.Date, "today", today)
		return zero, false
	}

	logger.Debug("Snapshot reused", "key", key, "date", today)
	return snap.Payload, true
}

func regenerate[T any](d *Deriver, key, today string, generate func() T) T {
	payload := generate()
	persist(d, key, Snapshot[T]{Date: today, Payload: payload})
	return payload
}

func persist[T any](d *Deriver, key string, snap Snapshot[T]) {
	raw, err := Encode(snap)
	if err != nil {
		logger.Error("Snapshot not persisted, holding payload for this process", "key", key, "error", err)
		d.held[key] = heldPayload{date: snap.Date, payload: snap.Payload}
		return
	}
	delete(d.held, key)
	d.store.Write(key, raw)
}

// Cell binds one key to its generator so a feature can derive and mutate
// without repeating either.
type Cell[T any] struct {
	d        *Deriver
	key      string
	generate func() T
}

// NewCell registers generate for key and returns the binding.
func NewCell[T any](d *Deriver, key string, generate func() T) *Cell[T] {
	Register(d, key, generate)
	return &Cell[T]{d: d, key: key, generate: generate}
}

// Key returns the storage key owned by the cell.
func (c *Cell[T]) Key() string {
	return c.key
}

// Get returns today's payload.
func (c *Cell[T]) Get(today string) T {
	return GetOrCreate(c.d, c.key, today, c.generate)
}

// Update applies mutator to today's payload and persists the result.
func (c *Cell[T]) Update(today string, mutator func(T) T) (T, error) {
	return Mutate(c.d, c.key, today, mutator)
}
