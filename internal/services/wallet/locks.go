package wallet

import "sync"

// lockRegistry hands out one mutex per user id. Entries live for the process
// lifetime; the user population is bounded and mutexes are 8 bytes.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{locks: make(map[uint]*sync.Mutex)}
}

func (r *lockRegistry) get(userID uint) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}

func (r *lockRegistry) lock(userID uint)   { r.get(userID).Lock() }
func (r *lockRegistry) unlock(userID uint) { r.get(userID).Unlock() }
