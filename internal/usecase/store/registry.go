package store

import (
	"sync"

	"storefront-cart/internal/pkg/config"
)

// Registry hands out one CartStore per cart id. A first-touch store starts
// speculative: its empty snapshot is not backend-confirmed, so reads
// re-fetch before trusting it.
type Registry struct {
	mu               sync.Mutex
	stores           map[string]*CartStore
	fallbackCurrency string
}

func NewRegistry(cfg config.Config) *Registry {
	return &Registry{
		stores:           make(map[string]*CartStore),
		fallbackCurrency: cfg.Cart.BaselineCurrency,
	}
}

func (r *Registry) For(cartID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[cartID]; ok {
		return s
	}
	s := NewUnseededCartStore(cartID, r.fallbackCurrency)
	r.stores[cartID] = s
	return s
}

// Forget drops a cart's store, e.g. after checkout completes.
func (r *Registry) Forget(cartID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, cartID)
}
