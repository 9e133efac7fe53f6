package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/pgconv"
	"storefront-cart/internal/usecase/commands"
)

// CartRepository is the authoritative cart persistence. Every mutation
// re-reads the full cart so callers always observe recomputed totals.
type CartRepository struct {
	db               *pgxpool.Pool
	baselineCurrency string
}

func NewCartRepository(db *pgxpool.Pool, cfg config.Config) *CartRepository {
	return &CartRepository{
		db:               db,
		baselineCurrency: cfg.Cart.BaselineCurrency,
	}
}

const getCartQuery = `
SELECT id, currency FROM carts WHERE id = $1
`

const getCartLinesQuery = `
SELECT id, merchandise_id, quantity, unit_price::text, currency,
       variant_title, product_slug, product_title, image_url
FROM cart_lines
WHERE cart_id = $1
ORDER BY created_at, id
`

const getCartCouponsQuery = `
SELECT code, type, value::text, minimum_subtotal::text
FROM cart_coupons
WHERE cart_id = $1
ORDER BY created_at
`

func (r *CartRepository) GetCart(ctx context.Context, cartID string) (*cart.Cart, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed cart id", err, infra.KindNotFound)
	}

	var rowID uuid.UUID
	var currency string
	if err := r.db.QueryRow(ctx, getCartQuery, id).Scan(&rowID, &currency); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart", err)
	}

	lines, err := r.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}

	coupons, err := r.loadCoupons(ctx, id)
	if err != nil {
		return nil, err
	}

	return r.assemble(rowID.String(), currency, lines, coupons), nil
}

func (r *CartRepository) CreateCart(ctx context.Context) (*cart.Cart, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO carts (id, currency) VALUES ($1, $2)`,
		id, r.baselineCurrency,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create cart", err)
	}

	created := cart.NewEmptyCart(id.String(), r.baselineCurrency)
	return &created, nil
}

// addLineQuery derives unit price and display references from the catalog;
// a conflicting merchandise id accumulates quantity instead of duplicating
// the line.
const addLineQuery = `
INSERT INTO cart_lines (
    id, cart_id, merchandise_id, quantity, unit_price, currency,
    variant_title, product_slug, product_title, image_url,
    product_id, object_id, group_id, item_type, cart_type
)
SELECT gen_random_uuid(), $1, v.id, $3, v.price, v.currency,
       v.title, v.product_slug, v.product_title, v.image_url,
       $4, $5, $6, $7, $8
FROM variants v
WHERE v.id = $2
ON CONFLICT (cart_id, merchandise_id)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity,
              updated_at = now()
`

func (r *CartRepository) AddToCart(ctx context.Context, cartID string, lines []commands.MutationLine) (*cart.Cart, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed cart id", err, infra.KindNotFound)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, line := range lines {
		tag, execErr := tx.Exec(ctx, addLineQuery,
			id, line.MerchandiseID, line.Quantity,
			backendField(line.Backend, func(b commands.BackendIdentifiers) int64 { return b.ProductID }),
			backendField(line.Backend, func(b commands.BackendIdentifiers) int64 { return b.ObjectID }),
			backendField(line.Backend, func(b commands.BackendIdentifiers) int64 { return b.GroupID }),
			backendField(line.Backend, func(b commands.BackendIdentifiers) int64 { return b.ItemType }),
			backendField(line.Backend, func(b commands.BackendIdentifiers) int64 { return b.CartType }),
		)
		if execErr != nil {
			return nil, infra.WrapRepoErr("failed to add cart line", execErr)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.WrapRepoErr("variant not found for cart line", nil, infra.KindNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit cart mutation", err)
	}

	return r.GetCart(ctx, cartID)
}

const updateLineByIDQuery = `
UPDATE cart_lines SET quantity = $3, updated_at = now()
WHERE cart_id = $1 AND id = $2
`

const updateLineByMerchandiseQuery = `
UPDATE cart_lines SET quantity = $3, updated_at = now()
WHERE cart_id = $1 AND merchandise_id = $2
`

func (r *CartRepository) UpdateCart(ctx context.Context, cartID string, lines []commands.MutationLine) (*cart.Cart, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed cart id", err, infra.KindNotFound)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, line := range lines {
		var tag pgconn.CommandTag
		if line.LineID != nil {
			tag, err = tx.Exec(ctx, updateLineByIDQuery, id, *line.LineID, line.Quantity)
		} else {
			tag, err = tx.Exec(ctx, updateLineByMerchandiseQuery, id, line.MerchandiseID, line.Quantity)
		}
		if err != nil {
			return nil, infra.WrapRepoErr("failed to update cart line", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.WrapRepoErr("cart line not found", nil, infra.KindNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit cart mutation", err)
	}

	return r.GetCart(ctx, cartID)
}

func (r *CartRepository) RemoveFromCart(ctx context.Context, cartID string, lineIDs []uuid.UUID) (*cart.Cart, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed cart id", err, infra.KindNotFound)
	}

	_, err = r.db.Exec(ctx,
		`DELETE FROM cart_lines WHERE cart_id = $1 AND id = ANY($2)`,
		id, lineIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to remove cart lines", err)
	}

	return r.GetCart(ctx, cartID)
}

func (r *CartRepository) AttachCoupon(ctx context.Context, cartID string, snap commands.CouponSnapshot) error {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return infra.WrapRepoErr("malformed cart id", err, infra.KindNotFound)
	}

	var minimum *string
	if snap.MinimumSubtotal != nil {
		s := snap.MinimumSubtotal.String()
		minimum = &s
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO cart_coupons (cart_id, code, type, value, minimum_subtotal)
		 VALUES ($1, $2, $3, $4::numeric, $5::numeric)
		 ON CONFLICT (cart_id, code) DO NOTHING`,
		id, snap.Code, snap.Type, snap.Value.String(), minimum,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to attach coupon", err)
	}
	return nil
}

func (r *CartRepository) loadLines(ctx context.Context, cartID uuid.UUID) ([]cart.LineItem, error) {
	rows, err := r.db.Query(ctx, getCartLinesQuery, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart lines", err)
	}
	defer rows.Close()

	var lines []cart.LineItem
	for rows.Next() {
		var (
			lineID        uuid.UUID
			merchandiseID string
			quantity      int
			priceText     string
			currency      string
			variantTitle  string
			productSlug   string
			productTitle  string
			imageURL      pgtype.Text
		)
		if err := rows.Scan(&lineID, &merchandiseID, &quantity, &priceText, &currency,
			&variantTitle, &productSlug, &productTitle, &imageURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}

		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid unit price in cart line", err)
		}

		id := lineID
		lines = append(lines, cart.NewLineItem(&id, merchandiseID, quantity, cart.UnitReference{
			VariantID:    merchandiseID,
			VariantTitle: variantTitle,
			ProductSlug:  productSlug,
			ProductTitle: productTitle,
			ImageURL:     imageURL.String,
			UnitPrice:    cart.NewMoney(price, currency),
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}
	return lines, nil
}

func (r *CartRepository) loadCoupons(ctx context.Context, cartID uuid.UUID) ([]coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, getCartCouponsQuery, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart coupons", err)
	}
	defer rows.Close()

	var coupons []coupon.Coupon
	for rows.Next() {
		var (
			code        string
			typ         string
			valueText   string
			minimumText pgtype.Text
		)
		if err := rows.Scan(&code, &typ, &valueText, &minimumText); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart coupon", err)
		}

		value, err := decimal.NewFromString(valueText)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon value", err)
		}

		var minimum *decimal.Decimal
		if s := pgconv.StringPtrFromPgtype(minimumText); s != nil {
			m, err := decimal.NewFromString(*s)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid coupon minimum subtotal", err)
			}
			minimum = &m
		}

		c, err := coupon.NewCoupon(code, coupon.Type(typ), value, minimum)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon row", err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart coupons", err)
	}
	return coupons, nil
}

// assemble rebuilds the aggregate with totals recomputed from the line set;
// stored rows never carry authoritative totals.
func (r *CartRepository) assemble(id, currency string, lines []cart.LineItem, coupons []coupon.Coupon) *cart.Cart {
	totals := cart.CalculateTotalsForLines(lines, currency, coupons)
	return &cart.Cart{
		ID:            id,
		Lines:         lines,
		TotalQuantity: totals.TotalQuantity,
		Cost: cart.Cost{
			Subtotal: totals.Subtotal,
			Discount: totals.Discount,
			Tax:      totals.Tax,
			Total:    totals.Total,
		},
		AppliedCoupons: totals.AppliedCoupons,
	}
}

func backendField(b *commands.BackendIdentifiers, pick func(commands.BackendIdentifiers) int64) pgtype.Int8 {
	if b == nil {
		return pgconv.Int64PtrToPgtype(nil)
	}
	v := pick(*b)
	return pgconv.Int64PtrToPgtype(&v)
}
