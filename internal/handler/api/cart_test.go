//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-cart/internal/handler/api"
	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/cookie"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/tests/common/builder"
	"storefront-cart/tests/common/httptest"
	"storefront-cart/tests/common/testutil"
	commandsmock "storefront-cart/tests/mock/commands"
	queriesmock "storefront-cart/tests/mock/queries"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	clientID     uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.clientID = uuid.New()

	s.router.GET("/api/cart", s.handler.GetCart)
	s.router.POST("/api/cart/items", s.handler.AddItem)
	s.router.PATCH("/api/cart/items", s.handler.UpdateItem)
	s.router.DELETE("/api/cart/items/:id", s.handler.RemoveItem)
	s.router.POST("/api/cart/coupons", s.handler.ApplyCoupon)
	s.router.POST("/api/cart/checkout", s.handler.InitiateCheckout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) clientCookie() *http.Cookie {
	return &http.Cookie{Name: cookie.ClientIDCookieName, Value: s.clientID.String()}
}

func (s *CartHandlerTestSuite) cartView() *queries.CartView {
	c := builder.NewCartBuilder().
		WithID("cart-1").
		WithLine("variant-a", 2, "10").
		Build()
	return queries.FromCart(c, "authoritative")
}

// ================================================================================
// GetCart
// ================================================================================

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: returns current view", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, s.clientCookie())

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cart-1", body.ID)
		s.Len(body.Lines, 1)
		s.Equal("20.00", body.Cost.Total.Amount)
	})

	s.Run("success: forwards the selected query parameter", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, override *string) (*queries.CartView, error) {
				s.Require().NotNil(override)
				s.Equal("variant-a,variant-b", *override)
				return s.cartView(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart?selected=variant-a,variant-b", nil, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: mints a client id cookie when absent", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), gomock.Any(), nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		minted := httptest.ExtractCookie(rec, cookie.ClientIDCookieName)
		s.Require().NotNil(minted)
		_, err := uuid.Parse(minted.Value)
		s.NoError(err)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(nil, errors.New("read failed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// AddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"
	reqBody := reqdto.AddItemRequest{MerchandiseID: "variant-a", Quantity: 2}

	s.Run("success: returns updated cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.clientID, "variant-a", 2.0).Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.clientCookie())

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.TotalQuantity)
	})

	s.Run("error: 400 on missing merchandise id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("merchandiseId", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 on unknown variant", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.clientID, "variant-a", 2.0).
			Return(commands.ErrVariantNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Variant not found")
	})

	s.Run("error: 500 on backend failure", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.clientID, "variant-a", 2.0).
			Return(commands.ErrCartMutationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// UpdateItem
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateItem() {
	url := "/api/cart/items"

	s.Run("success: set issues an absolute quantity update", func() {
		qty := 4.0
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-a", UpdateType: "set", Quantity: &qty}

		s.mockCommands.EXPECT().UpdateItemQuantity(gomock.Any(), s.clientID, nil, "variant-a", 4.0).Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: plus steps up from the current quantity", func() {
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-a", UpdateType: "plus"}

		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)
		s.mockCommands.EXPECT().UpdateItemQuantity(gomock.Any(), s.clientID, nil, "variant-a", 3.0).Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: minus on the last unit removes through the zero path", func() {
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-b", UpdateType: "minus"}

		view := s.cartView()
		view.Lines = append(view.Lines, queries.LineItemView{MerchandiseID: "variant-b", Quantity: 1})

		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(view, nil)
		s.mockCommands.EXPECT().UpdateItemQuantity(gomock.Any(), s.clientID, nil, "variant-b", 0.0).Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: minus on an absent line is a no-op", func() {
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "ghost", UpdateType: "minus"}

		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil).Times(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: delete routes to RemoveItem", func() {
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-a", UpdateType: "delete"}

		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.clientID, "variant-a").Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown update type", func() {
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-a", UpdateType: "increment"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown update type")
	})

	s.Run("error: 400 when set lacks a quantity", func() {
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-a", UpdateType: "set"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "quantity is required")
	})

	s.Run("error: 404 when the line is gone", func() {
		qty := 2.0
		reqBody := reqdto.UpdateItemRequest{MerchandiseID: "variant-a", UpdateType: "set", Quantity: &qty}

		s.mockCommands.EXPECT().UpdateItemQuantity(gomock.Any(), s.clientID, nil, "variant-a", 2.0).
			Return(commands.ErrLineNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

// ================================================================================
// RemoveItem
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.Run("success: removes by identifier", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.clientID, "variant-a").Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/variant-a", nil, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when no cart exists", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.clientID, "variant-a").
			Return(commands.ErrCartNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/variant-a", nil, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

// ================================================================================
// ApplyCoupon
// ================================================================================

func (s *CartHandlerTestSuite) TestApplyCoupon() {
	url := "/api/cart/coupons"

	s.Run("success: normalizes the code before dispatch", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.clientID, "SAVE10").Return(nil)
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.clientID, nil).Return(s.cartView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.ApplyCouponRequest{Code: "  save10  "}, s.clientCookie())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 on unknown coupon", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.clientID, "GHOST").
			Return(commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.ApplyCouponRequest{Code: "GHOST"}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 on invalid coupon", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.clientID, "BROKEN").
			Return(commands.ErrInvalidCoupon)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.ApplyCouponRequest{Code: "BROKEN"}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon")
	})
}

// ================================================================================
// InitiateCheckout
// ================================================================================

func (s *CartHandlerTestSuite) TestInitiateCheckout() {
	url := "/api/cart/checkout"

	s.Run("success: returns checkout URL", func() {
		s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), s.clientID, []string{"variant-a"}).
			Return("/checkout", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CheckoutRequest{SelectedMerchandiseIDs: []string{"variant-a"}}, s.clientCookie())

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("/checkout", body.CheckoutURL)
	})

	s.Run("error: 500 on token persistence failure", func() {
		s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), s.clientID, gomock.Any()).
			Return("", commands.ErrTokenPersistenceFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CheckoutRequest{}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
