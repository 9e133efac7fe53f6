//go:build unit

package cart_test

import (
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustCoupon(t *testing.T, code string, typ coupon.Type, value string, minimum *string) coupon.Coupon {
	t.Helper()
	var min *decimal.Decimal
	if minimum != nil {
		m := dec(*minimum)
		min = &m
	}
	c, err := coupon.NewCoupon(code, typ, dec(value), min)
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

func TestCalculateTotalsForLines(t *testing.T) {
	t.Run("sums quantities and line totals", func(t *testing.T) {
		c := builder.NewCartBuilder().WithLine("A", 2, "10").WithLine("B", 1, "5").Build()

		totals := cart.CalculateTotalsForLines(c.Lines, "USD", nil)

		assert.Equal(t, 3, totals.TotalQuantity)
		assert.True(t, totals.Subtotal.Amount.Equal(dec("25")))
		assert.True(t, totals.Total.Amount.Equal(dec("25")))
		assert.True(t, totals.Tax.Amount.IsZero())
		assert.Nil(t, totals.Discount)
	})

	t.Run("empty line set yields zero totals in fallback currency", func(t *testing.T) {
		totals := cart.CalculateTotalsForLines(nil, "EUR", nil)

		assert.Equal(t, 0, totals.TotalQuantity)
		assert.Equal(t, "0.00", totals.Total.String())
		assert.Equal(t, "EUR", totals.Total.CurrencyCode)
	})

	t.Run("percentage coupon", func(t *testing.T) {
		c := builder.NewCartBuilder().WithLine("A", 2, "10").WithLine("B", 1, "5").Build()
		save10 := mustCoupon(t, "SAVE10", coupon.TypePercentage, "10", nil)

		totals := cart.CalculateTotalsForLines(c.Lines, "USD", []coupon.Coupon{save10})

		require.NotNil(t, totals.Discount)
		assert.True(t, totals.Discount.Amount.Equal(dec("2.5")))
		assert.True(t, totals.Total.Amount.Equal(dec("22.5")))
	})

	t.Run("eligibility is re-evaluated on every call", func(t *testing.T) {
		take30 := mustCoupon(t, "TAKE30", coupon.TypeFixedAmount, "30", strPtr("50"))

		eligible := builder.NewCartBuilder().WithLine("A", 10, "10").Build() // subtotal 100
		totals := cart.CalculateTotalsForLines(eligible.Lines, "USD", []coupon.Coupon{take30})
		require.Len(t, totals.AppliedCoupons, 1)
		assert.True(t, totals.AppliedCoupons[0].Amount.Amount.Equal(dec("30")))

		// After the subtotal drops below the minimum the coupon goes inert
		// but stays listed.
		shrunk := builder.NewCartBuilder().WithLine("A", 4, "10").Build() // subtotal 40
		totals = cart.CalculateTotalsForLines(shrunk.Lines, "USD", []coupon.Coupon{take30})
		require.Len(t, totals.AppliedCoupons, 1)
		assert.True(t, totals.AppliedCoupons[0].Amount.Amount.IsZero())
		assert.True(t, totals.Total.Amount.Equal(dec("40")))
	})

	t.Run("per-coupon cap without joint cap", func(t *testing.T) {
		c := builder.NewCartBuilder().WithLine("A", 1, "100").Build()
		first := mustCoupon(t, "BIGONE", coupon.TypeFixedAmount, "60", nil)
		second := mustCoupon(t, "BIGTWO", coupon.TypeFixedAmount, "60", nil)

		totals := cart.CalculateTotalsForLines(c.Lines, "USD", []coupon.Coupon{first, second})

		// Each contribution stays within the subtotal, their sum may not;
		// the total-level clamp is the only joint limit.
		require.NotNil(t, totals.Discount)
		assert.True(t, totals.Discount.Amount.Equal(dec("120")))
		assert.True(t, totals.Total.Amount.IsZero())
	})

	t.Run("free shipping coupon stays listed with zero amount", func(t *testing.T) {
		c := builder.NewCartBuilder().WithLine("A", 1, "100").Build()
		ship := mustCoupon(t, "FREESHIP", coupon.TypeFreeShipping, "0", nil)

		totals := cart.CalculateTotalsForLines(c.Lines, "USD", []coupon.Coupon{ship})

		require.Len(t, totals.AppliedCoupons, 1)
		assert.True(t, totals.AppliedCoupons[0].Amount.Amount.IsZero())
		assert.True(t, totals.Total.Amount.Equal(dec("100")))
	})
}
