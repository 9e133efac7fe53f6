package queries

import (
	"github.com/google/uuid"

	"storefront-cart/internal/domain/cart"
)

// Read models (DTO for read side)
type MoneyView struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

type LineItemView struct {
	ID            *uuid.UUID `json:"id,omitempty"`
	MerchandiseID string     `json:"merchandise_id"`
	Quantity      int        `json:"quantity"`
	VariantTitle  string     `json:"variant_title"`
	ProductSlug   string     `json:"product_slug"`
	ProductTitle  string     `json:"product_title"`
	ImageURL      string     `json:"image_url,omitempty"`
	UnitPrice     MoneyView  `json:"unit_price"`
	LineTotal     MoneyView  `json:"line_total"`
}

type AppliedCouponView struct {
	Code   string    `json:"code"`
	Type   string    `json:"type"`
	Value  string    `json:"value"`
	Amount MoneyView `json:"amount"`
}

type CostView struct {
	Subtotal MoneyView  `json:"subtotal"`
	Discount *MoneyView `json:"discount,omitempty"`
	Tax      MoneyView  `json:"tax"`
	Total    MoneyView  `json:"total"`
}

type CartView struct {
	ID             string              `json:"id,omitempty"`
	Lines          []LineItemView      `json:"lines"`
	TotalQuantity  int                 `json:"total_quantity"`
	Cost           CostView            `json:"cost"`
	AppliedCoupons []AppliedCouponView `json:"applied_coupons"`
	SyncState      string              `json:"sync_state"`
}

func moneyView(m cart.Money) MoneyView {
	return MoneyView{
		Amount:       m.Amount.StringFixed(2),
		CurrencyCode: m.CurrencyCode,
	}
}

func FromCart(c cart.Cart, syncState string) *CartView {
	lines := make([]LineItemView, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = LineItemView{
			ID:            line.ID,
			MerchandiseID: line.MerchandiseID,
			Quantity:      line.Quantity,
			VariantTitle:  line.Unit.VariantTitle,
			ProductSlug:   line.Unit.ProductSlug,
			ProductTitle:  line.Unit.ProductTitle,
			ImageURL:      line.Unit.ImageURL,
			UnitPrice:     moneyView(line.Unit.UnitPrice),
			LineTotal:     moneyView(line.LineTotal),
		}
	}

	coupons := make([]AppliedCouponView, len(c.AppliedCoupons))
	for i, applied := range c.AppliedCoupons {
		coupons[i] = AppliedCouponView{
			Code:   applied.Coupon.Code().String(),
			Type:   string(applied.Coupon.Type()),
			Value:  applied.Coupon.Value().String(),
			Amount: moneyView(applied.Amount),
		}
	}

	cost := CostView{
		Subtotal: moneyView(c.Cost.Subtotal),
		Tax:      moneyView(c.Cost.Tax),
		Total:    moneyView(c.Cost.Total),
	}
	if c.Cost.Discount != nil {
		d := moneyView(*c.Cost.Discount)
		cost.Discount = &d
	}

	return &CartView{
		ID:             c.ID,
		Lines:          lines,
		TotalQuantity:  c.TotalQuantity,
		Cost:           cost,
		AppliedCoupons: coupons,
		SyncState:      syncState,
	}
}
