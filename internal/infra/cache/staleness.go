package cache

import "sync"

// StalenessTracker records cart ids whose cached snapshot no longer matches
// the backend. A stale id is never patched in place; readers re-fetch and
// then clear the flag.
type StalenessTracker struct {
	mu    sync.Mutex
	stale map[string]struct{}
}

func NewStalenessTracker() *StalenessTracker {
	return &StalenessTracker{stale: make(map[string]struct{})}
}

func (t *StalenessTracker) MarkStale(cartID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stale[cartID] = struct{}{}
}

func (t *StalenessTracker) IsStale(cartID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.stale[cartID]
	return ok
}

func (t *StalenessTracker) ClearStale(cartID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.stale, cartID)
}
