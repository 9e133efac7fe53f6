package request

import (
	"strings"

	"github.com/google/uuid"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/pkg/errs"
)

var (
	ErrUnknownUpdateType = errs.New("unknown update type")
	ErrQuantityRequired  = errs.New("quantity is required for set updates")
)

type AddItemRequest struct {
	MerchandiseID string  `json:"merchandiseId" binding:"required"`
	Quantity      float64 `json:"quantity"`
}

type UpdateItemRequest struct {
	LineID        *uuid.UUID `json:"lineId,omitempty"`
	MerchandiseID string     `json:"merchandiseId" binding:"required"`
	UpdateType    string     `json:"updateType" binding:"required"`
	Quantity      *float64   `json:"quantity,omitempty"`
}

// Validate checks the update shape before it reaches the gateway; set
// updates carry an explicit quantity, the stepping types do not.
func (r UpdateItemRequest) Validate() error {
	ut := cart.UpdateType(r.UpdateType)
	if !ut.IsValid() {
		return ErrUnknownUpdateType
	}
	if ut == cart.UpdateSet && r.Quantity == nil {
		return ErrQuantityRequired
	}
	return nil
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyCouponRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}

type CheckoutRequest struct {
	SelectedMerchandiseIDs []string `json:"selectedMerchandiseIds"`
}
