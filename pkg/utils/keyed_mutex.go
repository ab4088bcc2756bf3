package utils

import (
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex serializes commit+publish per negotiation so subscribers always
// observe updates in commit order. The optimistic version check stays the
// source of truth for conflicts; this lock only orders fan-out. Entries are
// reference-counted and freed once the last holder unlocks, so the map does
// not grow with every session ever touched.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[uuid.UUID]*keyLock)}
}

func (k *KeyedMutex) Lock(key uuid.UUID) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()
	l.mu.Lock()
}

func (k *KeyedMutex) Unlock(key uuid.UUID) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		return
	}
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
	l.mu.Unlock()
}
