// Package store holds the speculative cart state shown to the user between
// an action and its backend confirmation.
package store

import (
	"sync"

	"storefront-cart/internal/domain/cart"
)

type SyncState string

const (
	// StateAuthoritative: the snapshot matches the last backend read.
	StateAuthoritative SyncState = "authoritative"
	// StateSpeculative: the snapshot carries optimistic deltas the backend
	// has not confirmed.
	StateSpeculative SyncState = "speculative"
	// StateReconciling: a gateway mutation is in flight.
	StateReconciling SyncState = "reconciling"
)

// CartStore serializes action dispatch over immutable snapshots for one
// cart. Reconciliation is last-write-wins: SeedAuthoritative replaces the
// snapshot wholesale and unconfirmed optimistic deltas are discarded.
type CartStore struct {
	mu               sync.Mutex
	snapshot         cart.Cart
	state            SyncState
	fallbackCurrency string
}

func NewCartStore(seed cart.Cart, fallbackCurrency string) *CartStore {
	return &CartStore{
		snapshot:         seed.Clone(),
		state:            StateAuthoritative,
		fallbackCurrency: fallbackCurrency,
	}
}

// NewUnseededCartStore starts speculative: the empty snapshot has not been
// confirmed by a backend read and must not be served as authoritative.
func NewUnseededCartStore(cartID, fallbackCurrency string) *CartStore {
	return &CartStore{
		snapshot:         cart.NewEmptyCart(cartID, fallbackCurrency),
		state:            StateSpeculative,
		fallbackCurrency: fallbackCurrency,
	}
}

// Dispatch applies the pure reducer and returns the new snapshot. The store
// leaves Authoritative for Speculative; a dispatch during reconciliation
// keeps the Reconciling state.
func (s *CartStore) Dispatch(action cart.Action) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cart.Reduce(&s.snapshot, action, s.fallbackCurrency)
	s.snapshot = next
	if s.state == StateAuthoritative {
		s.state = StateSpeculative
	}
	return next.Clone()
}

func (s *CartStore) BeginReconcile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateReconciling
}

// ReconcileSucceeded leaves the snapshot speculative: the backend accepted
// the mutation but only the next authoritative read re-seeds the store.
func (s *CartStore) ReconcileSucceeded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSpeculative
}

// ReconcileFailed keeps the optimistic snapshot so the user can retry; no
// shared state was mutated by the failed call.
func (s *CartStore) ReconcileFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSpeculative
}

// SeedAuthoritative wholly replaces the snapshot with a backend-confirmed
// cart. Any not-yet-confirmed optimistic deltas are silently lost.
func (s *CartStore) SeedAuthoritative(c cart.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = c.Clone()
	s.state = StateAuthoritative
}

// Snapshot returns a deep copy so callers can never alias internal state.
func (s *CartStore) Snapshot() (cart.Cart, SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone(), s.state
}
