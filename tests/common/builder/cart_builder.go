package builder

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/coupon"
)

const DefaultCurrency = "USD"

type CartBuilder struct {
	id       string
	currency string
	lines    []cart.LineItem
	coupons  []coupon.Coupon
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		id:       "cart-test",
		currency: DefaultCurrency,
	}
}

func (b *CartBuilder) WithID(id string) *CartBuilder {
	b.id = id
	return b
}

func (b *CartBuilder) WithCurrency(currency string) *CartBuilder {
	b.currency = currency
	return b
}

// WithLine appends a persisted line for merchandiseID at the given quantity
// and unit price.
func (b *CartBuilder) WithLine(merchandiseID string, quantity int, unitPrice string) *CartBuilder {
	lineID := uuid.New()
	price := decimal.RequireFromString(unitPrice)
	unit := cart.UnitReference{
		VariantID:    merchandiseID,
		VariantTitle: "Variant " + merchandiseID,
		ProductSlug:  "product-" + merchandiseID,
		ProductTitle: "Product " + merchandiseID,
		UnitPrice:    cart.NewMoney(price, b.currency),
	}
	b.lines = append(b.lines, cart.NewLineItem(&lineID, merchandiseID, quantity, unit))
	return b
}

// WithOptimisticLine appends a line that has no persisted id yet.
func (b *CartBuilder) WithOptimisticLine(merchandiseID string, quantity int, unitPrice string) *CartBuilder {
	price := decimal.RequireFromString(unitPrice)
	unit := cart.UnitReference{
		VariantID: merchandiseID,
		UnitPrice: cart.NewMoney(price, b.currency),
	}
	b.lines = append(b.lines, cart.NewLineItem(nil, merchandiseID, quantity, unit))
	return b
}

func (b *CartBuilder) WithCoupon(c coupon.Coupon) *CartBuilder {
	b.coupons = append(b.coupons, c)
	return b
}

func (b *CartBuilder) Build() cart.Cart {
	totals := cart.CalculateTotalsForLines(b.lines, b.currency, b.coupons)
	return cart.Cart{
		ID:            b.id,
		Lines:         b.lines,
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

// UnitRef builds a resolver-style unit reference for ADD_ITEM actions.
func UnitRef(merchandiseID, unitPrice string) cart.UnitReference {
	return cart.UnitReference{
		VariantID:    merchandiseID,
		VariantTitle: "Variant " + merchandiseID,
		ProductSlug:  "product-" + merchandiseID,
		ProductTitle: "Product " + merchandiseID,
		UnitPrice:    cart.NewMoney(decimal.RequireFromString(unitPrice), DefaultCurrency),
	}
}
