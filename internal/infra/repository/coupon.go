package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/pgconv"
	"storefront-cart/internal/usecase/commands"
)

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

const findCouponByCodeQuery = `
SELECT code, type, value::text, minimum_subtotal::text
FROM coupons
WHERE code = $1 AND active = true
`

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	var (
		rowCode     string
		typ         string
		valueText   string
		minimumText pgtype.Text
	)
	normalized := strings.ToUpper(strings.TrimSpace(code))
	err := r.db.QueryRow(ctx, findCouponByCodeQuery, normalized).Scan(&rowCode, &typ, &valueText, &minimumText)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	value, err := decimal.NewFromString(valueText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon value", err)
	}

	snap := &commands.CouponSnapshot{
		Code:  rowCode,
		Type:  typ,
		Value: value,
	}
	if minimumText.Valid {
		m, err := decimal.NewFromString(minimumText.String)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon minimum subtotal", err)
		}
		snap.MinimumSubtotal = &m
	}
	return snap, nil
}
