package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/cart"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

// BackendIdentifiers are the numeric ids some catalog entries carry. When a
// variant supplies them, mutations are issued in the backend's richer native
// shape instead of the generic {merchandiseID, quantity} shape.
type BackendIdentifiers struct {
	ProductID int64
	ObjectID  int64
	GroupID   int64
	ItemType  int64
	CartType  int64
}

type VariantSnapshot struct {
	MerchandiseID string
	VariantTitle  string
	ProductSlug   string
	ProductTitle  string
	ImageURL      string
	UnitPrice     cart.Money
	Backend       *BackendIdentifiers
}

type CouponSnapshot struct {
	Code            string
	Type            string
	Value           decimal.Decimal
	MinimumSubtotal *decimal.Decimal
}

// MutationLine is the normalized line shape sent to the backend. LineID is
// set when updating a persisted line; Backend is set on the numeric path.
type MutationLine struct {
	MerchandiseID string
	Quantity      int
	LineID        *uuid.UUID
	Backend       *BackendIdentifiers
}

// CartBackend is the authoritative persistence surface. GetCart reports an
// absent cart as a not-found repository error.
type CartBackend interface {
	GetCart(ctx context.Context, cartID string) (*cart.Cart, error)
	CreateCart(ctx context.Context) (*cart.Cart, error)
	AddToCart(ctx context.Context, cartID string, lines []MutationLine) (*cart.Cart, error)
	UpdateCart(ctx context.Context, cartID string, lines []MutationLine) (*cart.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string, lineIDs []uuid.UUID) (*cart.Cart, error)
	AttachCoupon(ctx context.Context, cartID string, coupon CouponSnapshot) error
}

type VariantResolver interface {
	GetVariantByID(ctx context.Context, variantID string) (*VariantSnapshot, error)
}

type CouponResolver interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

// TokenStore persists small per-client strings with a bounded lifetime.
// Setting with ttl <= 0 clears the value.
type TokenStore interface {
	Get(ctx context.Context, clientID uuid.UUID, name string) (string, error)
	Set(ctx context.Context, clientID uuid.UUID, name, value string, ttl time.Duration) error
}

// CacheInvalidator marks cached cart state stale after a successful
// mutation; the next read must be a true re-fetch, never a cache patch.
type CacheInvalidator interface {
	MarkStale(cartID string)
}
