// Package keymu provides mutual exclusion scoped to a string key, so
// operations on different assets proceed concurrently while operations on
// the same asset are serialized.
package keymu

import (
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Mutex is a set of lazily created, reference counted mutexes keyed by
// string. The zero value is not usable, use New.
type Mutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Mutex {
	return &Mutex{
		entries: make(map[string]*entry),
	}
}

// Lock blocks until the mutex for key is held by the caller.
func (m *Mutex) Lock(key string) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. Unlocking a key that is not held
// panics, matching sync.Mutex.
func (m *Mutex) Unlock(key string) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		m.mu.Unlock()
		panic("keymu: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
	m.mu.Unlock()

	e.mu.Unlock()
}
