package response

import (
	"github.com/google/uuid"

	"storefront-cart/internal/usecase/queries"
)

type MoneyResponse struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type LineItemResponse struct {
	ID            *uuid.UUID    `json:"id,omitempty"`
	MerchandiseID string        `json:"merchandiseId"`
	Quantity      int           `json:"quantity"`
	VariantTitle  string        `json:"variantTitle"`
	ProductSlug   string        `json:"productSlug"`
	ProductTitle  string        `json:"productTitle"`
	ImageURL      string        `json:"imageUrl,omitempty"`
	UnitPrice     MoneyResponse `json:"unitPrice"`
	LineTotal     MoneyResponse `json:"lineTotal"`
}

type AppliedCouponResponse struct {
	Code   string        `json:"code"`
	Type   string        `json:"type"`
	Value  string        `json:"value"`
	Amount MoneyResponse `json:"amount"`
}

type CostResponse struct {
	Subtotal MoneyResponse  `json:"subtotalAmount"`
	Discount *MoneyResponse `json:"discountAmount,omitempty"`
	Tax      MoneyResponse  `json:"totalTaxAmount"`
	Total    MoneyResponse  `json:"totalAmount"`
}

type CartResponse struct {
	ID             string                  `json:"id"`
	Lines          []LineItemResponse      `json:"lines"`
	TotalQuantity  int                     `json:"totalQuantity"`
	Cost           CostResponse            `json:"cost"`
	AppliedCoupons []AppliedCouponResponse `json:"appliedCoupons"`
	SyncState      string                  `json:"syncState"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

func money(v queries.MoneyView) MoneyResponse {
	return MoneyResponse{Amount: v.Amount, CurrencyCode: v.CurrencyCode}
}

func FromCartView(view *queries.CartView) *CartResponse {
	lines := make([]LineItemResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = LineItemResponse{
			ID:            l.ID,
			MerchandiseID: l.MerchandiseID,
			Quantity:      l.Quantity,
			VariantTitle:  l.VariantTitle,
			ProductSlug:   l.ProductSlug,
			ProductTitle:  l.ProductTitle,
			ImageURL:      l.ImageURL,
			UnitPrice:     money(l.UnitPrice),
			LineTotal:     money(l.LineTotal),
		}
	}

	coupons := make([]AppliedCouponResponse, len(view.AppliedCoupons))
	for i, ac := range view.AppliedCoupons {
		coupons[i] = AppliedCouponResponse{
			Code:   ac.Code,
			Type:   ac.Type,
			Value:  ac.Value,
			Amount: money(ac.Amount),
		}
	}

	cost := CostResponse{
		Subtotal: money(view.Cost.Subtotal),
		Tax:      money(view.Cost.Tax),
		Total:    money(view.Cost.Total),
	}
	if view.Cost.Discount != nil {
		d := money(*view.Cost.Discount)
		cost.Discount = &d
	}

	return &CartResponse{
		ID:             view.ID,
		Lines:          lines,
		TotalQuantity:  view.TotalQuantity,
		Cost:           cost,
		AppliedCoupons: coupons,
		SyncState:      view.SyncState,
	}
}
