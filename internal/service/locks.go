package service

import "sync"

// lockTable hands out one mutex per ID so that mutations targeting the same
// session or team serialize while unrelated targets proceed in parallel.
// Locks are never reclaimed; the population is bounded by active games.
type lockTable struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[uint]*sync.Mutex)}
}

func (t *lockTable) get(id uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	return l
}
