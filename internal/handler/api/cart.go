package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-cart/internal/domain/cart"
	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/cookie"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
	cookieCfg    config.CookieConfig
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries, cfg config.Config) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Get cart
// @Description Get the current cart, optionally projected to a selection of merchandise ids
// @Tags cart
// @Produce json
// @Param selected query string false "Comma separated merchandise ids"
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	clientID := cookie.EnsureClientID(c, h.cookieCfg)

	var override *string
	if raw, ok := c.GetQuery("selected"); ok {
		override = &raw
	}

	view, err := h.cartQueries.GetCart(c.Request.Context(), clientID, override)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add item
// @Description Add a merchandise variant to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	clientID := cookie.EnsureClientID(c, h.cookieCfg)

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.cartCommands.AddItem(c.Request.Context(), clientID, req.MerchandiseID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVariantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Variant not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondWithCart(c, clientID)
}

// @Summary Update item
// @Description Apply a plus, minus, delete or set update to a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	clientID := cookie.EnsureClientID(c, h.cookieCfg)

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var err error
	switch cart.UpdateType(req.UpdateType) {
	case cart.UpdateDelete:
		identifier := req.MerchandiseID
		if req.LineID != nil {
			identifier = req.LineID.String()
		}
		err = h.cartCommands.RemoveItem(c.Request.Context(), clientID, identifier)
	case cart.UpdateSet:
		err = h.cartCommands.UpdateItemQuantity(c.Request.Context(), clientID, req.LineID, req.MerchandiseID, *req.Quantity)
	case cart.UpdatePlus, cart.UpdateMinus:
		err = h.stepQuantity(c, clientID, req)
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart not found",
			})
		case errors.Is(err, commands.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart line not found",
			})
		case errors.Is(err, commands.ErrVariantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Variant not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondWithCart(c, clientID)
}

// @Summary Remove item
// @Description Remove a cart line by line id or merchandise id
// @Tags cart
// @Produce json
// @Param id path string true "Line id or merchandise id"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	clientID := cookie.EnsureClientID(c, h.cookieCfg)

	err := h.cartCommands.RemoveItem(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart not found",
			})
		case errors.Is(err, commands.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart line not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondWithCart(c, clientID)
}

// @Summary Apply coupon
// @Description Attach a coupon code to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Apply coupon request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/coupons [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	clientID := cookie.EnsureClientID(c, h.cookieCfg)

	var req reqdto.ApplyCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.cartCommands.ApplyCoupon(c.Request.Context(), clientID, req.NormalizedCode())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, commands.ErrInvalidCoupon):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coupon",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondWithCart(c, clientID)
}

// @Summary Initiate checkout
// @Description Persist the selected merchandise ids and return the checkout URL
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) InitiateCheckout(c *gin.Context) {
	clientID := cookie.EnsureClientID(c, h.cookieCfg)

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	url, err := h.cartCommands.InitiateCheckout(c.Request.Context(), clientID, req.SelectedMerchandiseIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{CheckoutURL: url})
}

// stepQuantity resolves the current quantity of the targeted line and issues
// an absolute update one step away from it. A minus on the last unit removes
// the line through the gateway's zero-quantity path.
func (h *CartHandler) stepQuantity(c *gin.Context, clientID uuid.UUID, req reqdto.UpdateItemRequest) error {
	view, err := h.cartQueries.GetCart(c.Request.Context(), clientID, nil)
	if err != nil {
		return err
	}

	current := 0
	for _, line := range view.Lines {
		if req.LineID != nil && line.ID != nil && *line.ID == *req.LineID {
			current = line.Quantity
			break
		}
		if req.LineID == nil && line.MerchandiseID == req.MerchandiseID {
			current = line.Quantity
			break
		}
	}

	target := current + 1
	if cart.UpdateType(req.UpdateType) == cart.UpdateMinus {
		if current == 0 {
			return nil
		}
		target = current - 1
	}

	return h.cartCommands.UpdateItemQuantity(c.Request.Context(), clientID, req.LineID, req.MerchandiseID, float64(target))
}

func (h *CartHandler) respondWithCart(c *gin.Context, clientID uuid.UUID) {
	view, err := h.cartQueries.GetCart(c.Request.Context(), clientID, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
