package app

import "sync"

// PartLocks serializes read-modify-write cycles on the same part ID.
// Different part IDs never contend. Entries are dropped once unused.
type PartLocks struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

// NewPartLocks creates an empty lock table.
func NewPartLocks() *PartLocks {
	return &PartLocks{locks: make(map[string]*refLock)}
}

// Lock blocks until partID is free and returns the matching unlock.
func (p *PartLocks) Lock(partID string) (unlock func()) {
	p.mu.Lock()
	l, ok := p.locks[partID]
	if !ok {
		l = &refLock{}
		p.locks[partID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, partID)
		}
		p.mu.Unlock()
	}
}

func (p *PartLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
