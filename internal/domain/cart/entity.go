package cart

import (
	"github.com/google/uuid"

	"storefront-cart/internal/domain/coupon"
)

// UnitReference carries the variant and product display references a line
// was created from, plus the unit price every line total derives from.
type UnitReference struct {
	VariantID    string
	VariantTitle string
	ProductSlug  string
	ProductTitle string
	ImageURL     string
	UnitPrice    Money
}

// LineItem is one merchandise entry in a cart. ID is set only once the
// backend has persisted the line; optimistic-only lines carry nil.
type LineItem struct {
	ID            *uuid.UUID
	MerchandiseID string
	Quantity      int
	Unit          UnitReference
	LineTotal     Money
}

// NewLineItem builds a line with its total derived from the unit price, the
// only way LineTotal is ever produced.
func NewLineItem(id *uuid.UUID, merchandiseID string, quantity int, unit UnitReference) LineItem {
	return LineItem{
		ID:            id,
		MerchandiseID: merchandiseID,
		Quantity:      quantity,
		Unit:          unit,
		LineTotal:     unit.UnitPrice.MulInt(quantity),
	}
}

// AppliedCoupon pairs a coupon rule with its contribution at the current
// subtotal. Amount is derived on every evaluation, never authoritative.
type AppliedCoupon struct {
	Coupon coupon.Coupon
	Amount Money
}

type Cost struct {
	Subtotal Money
	Discount *Money
	Tax      Money
	Total    Money
}

// Cart is a snapshot of cart state. Lines are ordered and unique per
// merchandise id; TotalQuantity and Cost are always recomputed from Lines.
type Cart struct {
	ID             string
	Lines          []LineItem
	TotalQuantity  int
	Cost           Cost
	AppliedCoupons []AppliedCoupon
}

func NewEmptyCart(id, currencyCode string) Cart {
	return Cart{
		ID:    id,
		Lines: []LineItem{},
		Cost: Cost{
			Subtotal: ZeroMoney(currencyCode),
			Tax:      ZeroMoney(currencyCode),
			Total:    ZeroMoney(currencyCode),
		},
		AppliedCoupons: []AppliedCoupon{},
	}
}

// LineIndex returns the position of the line keyed by merchandiseID, or -1.
func (c Cart) LineIndex(merchandiseID string) int {
	for i, line := range c.Lines {
		if line.MerchandiseID == merchandiseID {
			return i
		}
	}
	return -1
}

// FindLine matches by persisted line id or merchandise id, so lines that
// exist only optimistically are still addressable.
func (c Cart) FindLine(identifier string) (LineItem, bool) {
	for _, line := range c.Lines {
		if line.ID != nil && line.ID.String() == identifier {
			return line, true
		}
		if line.MerchandiseID == identifier {
			return line, true
		}
	}
	return LineItem{}, false
}

// Clone returns a deep copy; callers can hold it without aliasing the
// original's lines or cost pointers.
func (c Cart) Clone() Cart {
	lines := make([]LineItem, len(c.Lines))
	copy(lines, c.Lines)
	for i := range lines {
		if lines[i].ID != nil {
			id := *lines[i].ID
			lines[i].ID = &id
		}
	}

	applied := make([]AppliedCoupon, len(c.AppliedCoupons))
	copy(applied, c.AppliedCoupons)

	cost := c.Cost
	if cost.Discount != nil {
		d := *cost.Discount
		cost.Discount = &d
	}

	return Cart{
		ID:             c.ID,
		Lines:          lines,
		TotalQuantity:  c.TotalQuantity,
		Cost:           cost,
		AppliedCoupons: applied,
	}
}

// Coupons extracts the applied coupon rules, dropping their stale amounts.
func (c Cart) Coupons() []coupon.Coupon {
	coupons := make([]coupon.Coupon, len(c.AppliedCoupons))
	for i, applied := range c.AppliedCoupons {
		coupons[i] = applied.Coupon
	}
	return coupons
}
