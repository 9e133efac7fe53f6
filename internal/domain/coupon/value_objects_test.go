//go:build unit

package coupon_test

import (
	"testing"

	"storefront-cart/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewCoupon(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		typ   coupon.Type
		value decimal.Decimal
		errIs error
	}{
		{name: "valid percentage", code: "SAVE10", typ: coupon.TypePercentage, value: dec("10")},
		{name: "valid fixed amount", code: "TAKE5", typ: coupon.TypeFixedAmount, value: dec("5")},
		{name: "valid free shipping", code: "FREESHIP", typ: coupon.TypeFreeShipping, value: decimal.Zero},
		{name: "lowercase code normalized", code: "save10", typ: coupon.TypePercentage, value: dec("10")},
		{name: "malformed code", code: "no spaces!", typ: coupon.TypePercentage, value: dec("10"), errIs: coupon.ErrInvalidCouponCode},
		{name: "unknown type", code: "SAVE10", typ: coupon.Type("bogus"), value: dec("10"), errIs: coupon.ErrInvalidCouponType},
		{name: "negative value", code: "SAVE10", typ: coupon.TypeFixedAmount, value: dec("-1"), errIs: coupon.ErrInvalidDiscountValue},
		{name: "percentage over 100", code: "SAVE10", typ: coupon.TypePercentage, value: dec("101"), errIs: coupon.ErrInvalidDiscountPercent},
		{name: "percentage boundary 0", code: "SAVE10", typ: coupon.TypePercentage, value: decimal.Zero},
		{name: "percentage boundary 100", code: "ALLOFF", typ: coupon.TypePercentage, value: dec("100")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(tt.code, tt.typ, tt.value, nil)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, c.Value().Equal(tt.value))
		})
	}
}

func TestDiscountFor(t *testing.T) {
	min50 := dec("50")

	t.Run("percentage of subtotal", func(t *testing.T) {
		c, err := coupon.NewCoupon("SAVE10", coupon.TypePercentage, dec("10"), nil)
		require.NoError(t, err)
		assert.True(t, c.DiscountFor(dec("55")).Equal(dec("5.5")))
	})

	t.Run("fixed amount contributes exactly its value", func(t *testing.T) {
		c, err := coupon.NewCoupon("TAKE30", coupon.TypeFixedAmount, dec("30"), &min50)
		require.NoError(t, err)
		assert.True(t, c.DiscountFor(dec("100")).Equal(dec("30")))
	})

	t.Run("minimum subtotal not met contributes zero", func(t *testing.T) {
		c, err := coupon.NewCoupon("TAKE30", coupon.TypeFixedAmount, dec("30"), &min50)
		require.NoError(t, err)
		assert.True(t, c.DiscountFor(dec("40")).IsZero())
		assert.False(t, c.EligibleFor(dec("40")))
	})

	t.Run("contribution capped at subtotal", func(t *testing.T) {
		c, err := coupon.NewCoupon("TAKE30", coupon.TypeFixedAmount, dec("30"), nil)
		require.NoError(t, err)
		assert.True(t, c.DiscountFor(dec("20")).Equal(dec("20")))
	})

	t.Run("free shipping contributes zero here", func(t *testing.T) {
		c, err := coupon.NewCoupon("FREESHIP", coupon.TypeFreeShipping, decimal.Zero, nil)
		require.NoError(t, err)
		assert.True(t, c.DiscountFor(dec("100")).IsZero())
		assert.True(t, c.EligibleFor(dec("100")))
	})
}
