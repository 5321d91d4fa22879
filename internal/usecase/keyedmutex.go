package usecase

import "sync"

// KeyedMutex serializes read-modify-write cycles per user id. Two wager
// resolutions for the same user must not interleave; different users
// need no coordination.
type KeyedMutex struct {
	mus sync.Map
}

func (k *KeyedMutex) Lock(key string) func() {
	v, _ := k.mus.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
