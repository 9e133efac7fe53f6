package queries

import (
	"context"

	"github.com/google/uuid"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/selection"
	"storefront-cart/internal/usecase/shared"
	"storefront-cart/internal/usecase/store"
)

var ErrCartReadFailed = errs.New("cart read failed")

// CartReadStore is the authoritative read surface; an absent cart is a
// not-found repository error.
type CartReadStore interface {
	GetCart(ctx context.Context, cartID string) (*cart.Cart, error)
}

type TokenReader interface {
	Get(ctx context.Context, clientID uuid.UUID, name string) (string, error)
}

// StalenessTracker reports whether cached cart state may be served or must
// be re-fetched from the backend.
type StalenessTracker interface {
	IsStale(cartID string) bool
	ClearStale(cartID string)
}

type CartQueries interface {
	// GetCart returns the client's cart scoped by the persisted selection
	// token, or by selectionOverride when the caller supplies one. A client
	// without a cart gets a valid empty view.
	GetCart(ctx context.Context, clientID uuid.UUID, selectionOverride *string) (*CartView, error)
}

type cartQueriesImpl struct {
	backend CartReadStore
	tokens  TokenReader
	stale   StalenessTracker
	stores  *store.Registry
	cfg     config.CartConfig
}

func NewCartQueries(
	backend CartReadStore,
	tokens TokenReader,
	stale StalenessTracker,
	stores *store.Registry,
	cfg config.Config,
) CartQueries {
	return &cartQueriesImpl{
		backend: backend,
		tokens:  tokens,
		stale:   stale,
		stores:  stores,
		cfg:     cfg.Cart,
	}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, clientID uuid.UUID, selectionOverride *string) (*CartView, error) {
	cartID, err := q.tokens.Get(ctx, clientID, shared.CartIDTokenName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			empty := cart.NewEmptyCart("", q.cfg.BaselineCurrency)
			return FromCart(empty, string(store.StateAuthoritative)), nil
		}
		return nil, errs.Mark(err, ErrCartReadFailed)
	}

	snapshot, state, err := q.currentSnapshot(ctx, cartID)
	if err != nil {
		return nil, err
	}

	selected, err := q.selectedIDs(ctx, clientID, selectionOverride)
	if err != nil {
		return nil, err
	}

	projected := cart.ProjectForSelection(snapshot, selected, q.cfg.BaselineCurrency)
	return FromCart(projected, string(state)), nil
}

// currentSnapshot serves the optimistic snapshot only while it is
// authoritative and not marked stale; any staleness forces a true re-fetch
// that wholesale re-seeds the store (last-write-wins, never a merge).
func (q *cartQueriesImpl) currentSnapshot(ctx context.Context, cartID string) (cart.Cart, store.SyncState, error) {
	st := q.stores.For(cartID)

	if !q.stale.IsStale(cartID) {
		if snapshot, state := st.Snapshot(); state == store.StateAuthoritative {
			return snapshot, state, nil
		}
	}

	authoritative, err := q.backend.GetCart(ctx, cartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			empty := cart.NewEmptyCart(cartID, q.cfg.BaselineCurrency)
			st.SeedAuthoritative(empty)
			q.stale.ClearStale(cartID)
			return empty, store.StateAuthoritative, nil
		}
		return cart.Cart{}, "", errs.Mark(err, ErrCartReadFailed)
	}

	st.SeedAuthoritative(*authoritative)
	q.stale.ClearStale(cartID)
	return authoritative.Clone(), store.StateAuthoritative, nil
}

func (q *cartQueriesImpl) selectedIDs(ctx context.Context, clientID uuid.UUID, override *string) ([]string, error) {
	if override != nil {
		return selection.ParseSelectedMerchandiseIDs(*override), nil
	}

	raw, err := q.tokens.Get(ctx, clientID, shared.SelectionTokenName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrCartReadFailed)
	}
	return selection.ParseSelectedMerchandiseIDs(raw), nil
}
