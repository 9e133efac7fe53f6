package commands

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/selection"
	"storefront-cart/internal/usecase/shared"
	"storefront-cart/internal/usecase/store"
)

var (
	ErrCartNotFound           = errs.New("cart not found")
	ErrVariantNotFound        = errs.New("variant not found")
	ErrLineNotFound           = errs.New("line not found")
	ErrCouponNotFound         = errs.New("coupon not found")
	ErrInvalidCoupon          = errs.New("invalid coupon")
	ErrCartMutationFailed     = errs.New("cart mutation failed")
	ErrTokenPersistenceFailed = errs.New("token persistence failed")
)

// Cart ids are client-scoped and long-lived; the selection token is not.
const cartIDLifetime = 30 * 24 * time.Hour

// CartCommands orchestrates authoritative cart mutations. Every operation
// returns a sentinel-tagged error, never a raw transport error, and marks
// cached cart state stale instead of patching any cache.
type CartCommands interface {
	AddItem(ctx context.Context, clientID uuid.UUID, variantID string, quantity float64) error
	RemoveItem(ctx context.Context, clientID uuid.UUID, lineIdentifier string) error
	UpdateItemQuantity(ctx context.Context, clientID uuid.UUID, lineID *uuid.UUID, merchandiseID string, quantity float64) error
	ApplyCoupon(ctx context.Context, clientID uuid.UUID, code string) error
	InitiateCheckout(ctx context.Context, clientID uuid.UUID, selected []string) (string, error)
}

type cartCommandsImpl struct {
	backend  CartBackend
	variants VariantResolver
	coupons  CouponResolver
	tokens   TokenStore
	stale    CacheInvalidator
	stores   *store.Registry
	cfg      config.CartConfig
}

func NewCartCommands(
	backend CartBackend,
	variants VariantResolver,
	coupons CouponResolver,
	tokens TokenStore,
	stale CacheInvalidator,
	stores *store.Registry,
	cfg config.Config,
) CartCommands {
	return &cartCommandsImpl{
		backend:  backend,
		variants: variants,
		coupons:  coupons,
		tokens:   tokens,
		stale:    stale,
		stores:   stores,
		cfg:      cfg.Cart,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, clientID uuid.UUID, variantID string, quantity float64) error {
	qty := normalizeAddQuantity(quantity)

	snap, err := c.variants.GetVariantByID(ctx, variantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVariantNotFound
		}
		return errs.Mark(err, ErrVariantNotFound)
	}

	cartID, err := c.ensureCartID(ctx, clientID)
	if err != nil {
		return err
	}

	st := c.stores.For(cartID)
	st.Dispatch(cart.AddItemAction{
		MerchandiseID: snap.MerchandiseID,
		Unit:          unitFromVariant(snap),
		QuantityDelta: float64(qty),
	})

	st.BeginReconcile()
	if _, err := c.backend.AddToCart(ctx, cartID, []MutationLine{mutationLine(snap.MerchandiseID, qty, nil, snap.Backend)}); err != nil {
		st.ReconcileFailed()
		return errs.Mark(err, ErrCartMutationFailed)
	}
	st.ReconcileSucceeded()

	c.stale.MarkStale(cartID)
	return nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, clientID uuid.UUID, lineIdentifier string) error {
	cartID, err := c.lookupCartID(ctx, clientID)
	if err != nil {
		return err
	}
	if cartID == "" {
		return ErrCartNotFound
	}

	st := c.stores.For(cartID)
	snapshot, _ := st.Snapshot()

	// Match by persisted line id or merchandise id; the optimistic snapshot
	// is consulted first so lines the backend has not confirmed yet are
	// removable too.
	line, ok := snapshot.FindLine(lineIdentifier)
	if !ok {
		authoritative, getErr := c.backend.GetCart(ctx, cartID)
		if getErr != nil {
			if infra.IsKind(getErr, infra.KindNotFound) {
				return ErrCartNotFound
			}
			return errs.Mark(getErr, ErrCartMutationFailed)
		}
		line, ok = authoritative.FindLine(lineIdentifier)
		if !ok {
			return ErrLineNotFound
		}
	}

	st.Dispatch(cart.UpdateItemAction{
		MerchandiseID: line.MerchandiseID,
		UpdateType:    cart.UpdateDelete,
	})

	if line.ID != nil {
		st.BeginReconcile()
		if _, err := c.backend.RemoveFromCart(ctx, cartID, []uuid.UUID{*line.ID}); err != nil {
			st.ReconcileFailed()
			return errs.Mark(err, ErrCartMutationFailed)
		}
		st.ReconcileSucceeded()
	}

	c.stale.MarkStale(cartID)
	return nil
}

// UpdateItemQuantity maps every (exists?, hasBackendMeta?, quantitySign)
// combination onto exactly one of four branches: remove, numeric-path
// update, generic-path update, or create preferring the numeric add path.
func (c *cartCommandsImpl) UpdateItemQuantity(ctx context.Context, clientID uuid.UUID, lineID *uuid.UUID, merchandiseID string, quantity float64) error {
	qty := normalizeSetQuantity(quantity)

	cartID, err := c.lookupCartID(ctx, clientID)
	if err != nil {
		return err
	}
	if cartID == "" {
		if qty == 0 {
			return nil
		}
		cartID, err = c.ensureCartID(ctx, clientID)
		if err != nil {
			return err
		}
	}

	existing, exists := c.findExistingLine(ctx, cartID, lineID, merchandiseID)

	switch {
	case exists && qty == 0:
		return c.removeExistingLine(ctx, cartID, existing)

	case exists:
		return c.updateExistingLine(ctx, cartID, existing, merchandiseID, qty)

	case qty > 0:
		return c.createLine(ctx, cartID, merchandiseID, qty)

	default:
		// No line and nothing to set; removal of the absent is a no-op.
		return nil
	}
}

func (c *cartCommandsImpl) removeExistingLine(ctx context.Context, cartID string, line cart.LineItem) error {
	st := c.stores.For(cartID)
	st.Dispatch(cart.UpdateItemAction{
		MerchandiseID: line.MerchandiseID,
		UpdateType:    cart.UpdateDelete,
	})

	if line.ID != nil {
		st.BeginReconcile()
		if _, err := c.backend.RemoveFromCart(ctx, cartID, []uuid.UUID{*line.ID}); err != nil {
			st.ReconcileFailed()
			return errs.Mark(err, ErrCartMutationFailed)
		}
		st.ReconcileSucceeded()
	}

	c.stale.MarkStale(cartID)
	return nil
}

func (c *cartCommandsImpl) updateExistingLine(ctx context.Context, cartID string, line cart.LineItem, merchandiseID string, qty int) error {
	// The numeric-path / generic-path split is decided here, at the
	// normalization boundary, by whether the catalog supplies backend ids.
	backendIDs := c.backendIdentifiersFor(ctx, merchandiseID)

	st := c.stores.For(cartID)
	st.Dispatch(cart.UpdateItemAction{
		MerchandiseID: line.MerchandiseID,
		UpdateType:    cart.UpdateSet,
		Quantity:      float64(qty),
	})

	st.BeginReconcile()
	if _, err := c.backend.UpdateCart(ctx, cartID, []MutationLine{mutationLine(merchandiseID, qty, line.ID, backendIDs)}); err != nil {
		st.ReconcileFailed()
		return errs.Mark(err, ErrCartMutationFailed)
	}
	st.ReconcileSucceeded()

	c.stale.MarkStale(cartID)
	return nil
}

func (c *cartCommandsImpl) createLine(ctx context.Context, cartID, merchandiseID string, qty int) error {
	snap, err := c.variants.GetVariantByID(ctx, merchandiseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVariantNotFound
		}
		return errs.Mark(err, ErrVariantNotFound)
	}

	st := c.stores.For(cartID)
	st.Dispatch(cart.AddItemAction{
		MerchandiseID: snap.MerchandiseID,
		Unit:          unitFromVariant(snap),
		QuantityDelta: float64(qty),
	})

	st.BeginReconcile()
	if _, err := c.backend.AddToCart(ctx, cartID, []MutationLine{mutationLine(snap.MerchandiseID, qty, nil, snap.Backend)}); err != nil {
		st.ReconcileFailed()
		return errs.Mark(err, ErrCartMutationFailed)
	}
	st.ReconcileSucceeded()

	c.stale.MarkStale(cartID)
	return nil
}

func (c *cartCommandsImpl) ApplyCoupon(ctx context.Context, clientID uuid.UUID, code string) error {
	snap, err := c.coupons.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrCouponNotFound)
	}

	// Validate through the domain before touching the backend.
	if _, err := coupon.NewCoupon(snap.Code, coupon.Type(snap.Type), snap.Value, snap.MinimumSubtotal); err != nil {
		return errs.Mark(err, ErrInvalidCoupon)
	}

	cartID, err := c.ensureCartID(ctx, clientID)
	if err != nil {
		return err
	}

	if err := c.backend.AttachCoupon(ctx, cartID, *snap); err != nil {
		return errs.Mark(err, ErrCartMutationFailed)
	}

	c.stale.MarkStale(cartID)
	return nil
}

// InitiateCheckout persists the user's line selection with a bounded
// lifetime and returns the checkout redirect target. An empty selection
// clears the token, which means "all lines".
func (c *cartCommandsImpl) InitiateCheckout(ctx context.Context, clientID uuid.UUID, selected []string) (string, error) {
	cartID, err := c.ensureCartID(ctx, clientID)
	if err != nil {
		return "", err
	}

	ttl := c.cfg.SelectionTTL
	if len(selected) == 0 {
		ttl = 0
	}
	token := selection.SerializeSelectedMerchandiseIDs(selected)
	if err := c.tokens.Set(ctx, clientID, shared.SelectionTokenName, token, ttl); err != nil {
		return "", errs.Mark(err, ErrTokenPersistenceFailed)
	}

	// Checkout hands the cart to the backend; the optimistic store is
	// dropped and the next read re-seeds from an authoritative fetch.
	c.stores.Forget(cartID)
	c.stale.MarkStale(cartID)

	return c.cfg.CheckoutURL, nil
}

// ensureCartID resolves the client's cart, creating one on first mutation.
// The token write is idempotent: nothing is written when the stored id
// already matches the authoritative one.
func (c *cartCommandsImpl) ensureCartID(ctx context.Context, clientID uuid.UUID) (string, error) {
	stored, err := c.lookupCartID(ctx, clientID)
	if err != nil {
		return "", err
	}

	if stored != "" {
		if _, getErr := c.backend.GetCart(ctx, stored); getErr == nil {
			return stored, nil
		} else if !infra.IsKind(getErr, infra.KindNotFound) {
			return "", errs.Mark(getErr, ErrCartMutationFailed)
		}
		slog.Warn("stored cart id no longer resolves, creating a new cart", "cart_id", stored)
	}

	created, err := c.backend.CreateCart(ctx)
	if err != nil {
		return "", errs.Mark(err, ErrCartMutationFailed)
	}

	if created.ID != stored {
		if err := c.tokens.Set(ctx, clientID, shared.CartIDTokenName, created.ID, cartIDLifetime); err != nil {
			return "", errs.Mark(err, ErrTokenPersistenceFailed)
		}
	}
	return created.ID, nil
}

func (c *cartCommandsImpl) lookupCartID(ctx context.Context, clientID uuid.UUID) (string, error) {
	stored, err := c.tokens.Get(ctx, clientID, shared.CartIDTokenName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil
		}
		return "", errs.Mark(err, ErrTokenPersistenceFailed)
	}
	return stored, nil
}

func (c *cartCommandsImpl) findExistingLine(ctx context.Context, cartID string, lineID *uuid.UUID, merchandiseID string) (cart.LineItem, bool) {
	identifier := merchandiseID
	if lineID != nil {
		identifier = lineID.String()
	}

	snapshot, _ := c.stores.For(cartID).Snapshot()
	if line, ok := snapshot.FindLine(identifier); ok {
		return line, true
	}

	authoritative, err := c.backend.GetCart(ctx, cartID)
	if err != nil {
		return cart.LineItem{}, false
	}
	return authoritative.FindLine(identifier)
}

// backendIdentifiersFor returns the numeric catalog ids for a merchandise,
// or nil when the catalog cannot supply them and the generic shape applies.
func (c *cartCommandsImpl) backendIdentifiersFor(ctx context.Context, merchandiseID string) *BackendIdentifiers {
	snap, err := c.variants.GetVariantByID(ctx, merchandiseID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("variant lookup failed, falling back to generic mutation shape",
				"merchandise_id", merchandiseID, "error", err)
		}
		return nil
	}
	return snap.Backend
}

func unitFromVariant(snap *VariantSnapshot) cart.UnitReference {
	var unit cart.UnitReference
	_ = copier.Copy(&unit, snap)
	unit.VariantID = snap.MerchandiseID
	return unit
}

func mutationLine(merchandiseID string, qty int, lineID *uuid.UUID, backend *BackendIdentifiers) MutationLine {
	return MutationLine{
		MerchandiseID: merchandiseID,
		Quantity:      qty,
		LineID:        lineID,
		Backend:       backend,
	}
}

// normalizeAddQuantity coerces arbitrary client input to an integer >= 1;
// non-finite values default to 1.
func normalizeAddQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 1
	}
	n := int(math.Round(q))
	if n < 1 {
		return 1
	}
	return n
}

// normalizeSetQuantity coerces to an integer >= 0; zero means remove.
func normalizeSetQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 1
	}
	n := int(math.Round(q))
	if n < 0 {
		return 0
	}
	return n
}
