package cart

import (
	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/coupon"
)

// Totals is the full recomputation result for a line set.
type Totals struct {
	TotalQuantity  int
	Subtotal       Money
	Discount       *Money
	Tax            Money
	Total          Money
	AppliedCoupons []AppliedCoupon
}

// CalculateTotalsForLines recomputes every monetary aggregate for an
// arbitrary subset of lines. Coupon eligibility is re-evaluated from scratch
// on each call: a coupon whose minimum subtotal is no longer met contributes
// zero but remains listed.
//
// Each coupon's contribution is individually capped at the subtotal; the
// only joint clamp is total = max(subtotal - discount, 0). Tax is always
// zero at this layer, it is computed downstream at checkout.
func CalculateTotalsForLines(lines []LineItem, fallbackCurrency string, coupons []coupon.Coupon) Totals {
	currency := fallbackCurrency
	if len(lines) > 0 {
		currency = lines[0].LineTotal.CurrencyCode
	}

	totalQuantity := 0
	subtotal := decimal.Zero
	for _, line := range lines {
		totalQuantity += line.Quantity
		subtotal = subtotal.Add(line.LineTotal.Amount)
	}

	applied := make([]AppliedCoupon, len(coupons))
	totalDiscount := decimal.Zero
	for i, c := range coupons {
		amount := c.DiscountFor(subtotal)
		applied[i] = AppliedCoupon{
			Coupon: c,
			Amount: NewMoney(amount, currency),
		}
		totalDiscount = totalDiscount.Add(amount)
	}

	total := subtotal.Sub(totalDiscount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	var discount *Money
	if len(coupons) > 0 {
		d := NewMoney(totalDiscount, currency)
		discount = &d
	}

	return Totals{
		TotalQuantity:  totalQuantity,
		Subtotal:       NewMoney(subtotal, currency),
		Discount:       discount,
		Tax:            ZeroMoney(currency),
		Total:          NewMoney(total, currency),
		AppliedCoupons: applied,
	}
}
