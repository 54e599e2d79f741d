// Package orderlock provides a keyed mutual-exclusion primitive used to
// serialize multi-step persistence sequences per tracked order. The core's
// operations are deliberately not transactional, so without serialization two
// writers touching the same order can interleave; locking per key is an
// opt-in strengthening, not a behavior change.
package orderlock

import "sync"

// KeyedMutex is an arena of mutexes indexed by key. Locks are created on
// demand and removed again once no goroutine holds or waits on them, so the
// arena does not grow with the number of distinct keys ever seen.
type KeyedMutex[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty keyed mutex arena.
func New[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{
		entries: make(map[K]*lockEntry),
	}
}

// Lock acquires the mutex for key, blocking until it is available.
func (k *KeyedMutex[K]) Lock(key K) {
	k.mu.Lock()
	entry, ok := k.entries[key]
	if !ok {
		entry = &lockEntry{}
		k.entries[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the mutex for key. Calling Unlock for a key that is not
// locked by the caller is a programming error, as with sync.Mutex.
func (k *KeyedMutex[K]) Unlock(key K) {
	k.mu.Lock()
	entry := k.entries[key]
	entry.refs--
	if entry.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	entry.mu.Unlock()
}

// Noop satisfies the same contract as KeyedMutex without any locking.
// It is the default: the faithful mode in which concurrent writers to the
// same order may interleave.
type Noop[K comparable] struct{}

// NewNoop creates a no-op locker.
func NewNoop[K comparable]() Noop[K] {
	return Noop[K]{}
}

// Lock does nothing.
func (Noop[K]) Lock(K) {}

// Unlock does nothing.
func (Noop[K]) Unlock(K) {}
