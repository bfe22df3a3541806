package service

import (
	"sync"
)

// roomLocks serializes the validate-then-persist sequence per room. The room
// lock is held from before the conflict check until the write lands, so two
// concurrent requests for the same room can never both pass the overlap check
// against a stale view and both commit.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for roomID, creating it on first use, and returns
// the unlock func. Room locks are never dropped; the set of rooms is small
// and fixed at bootstrap.
func (l *roomLocks) Lock(roomID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[roomID] = lock
	}
	l.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}
