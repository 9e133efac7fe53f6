//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/internal/usecase/shared"
	"storefront-cart/internal/usecase/store"
	"storefront-cart/tests/common/builder"
	queriesmock "storefront-cart/tests/mock/queries"
)

const testCartID = "6f1b2a64-9a1f-4c7e-8d35-0f4f2f1c9b11"

type CartQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	backend  *queriesmock.MockCartReadStore
	tokens   *queriesmock.MockTokenReader
	stale    *queriesmock.MockStalenessTracker
	registry *store.Registry
	queries  queries.CartQueries
	clientID uuid.UUID
	ctx      context.Context
}

func (s *CartQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.backend = queriesmock.NewMockCartReadStore(s.ctrl)
	s.tokens = queriesmock.NewMockTokenReader(s.ctrl)
	s.stale = queriesmock.NewMockStalenessTracker(s.ctrl)
	s.registry = store.NewRegistry(config.NewTestConfig())
	s.queries = queries.NewCartQueries(s.backend, s.tokens, s.stale, s.registry, config.NewTestConfig())
	s.clientID = uuid.New()
	s.ctx = context.Background()
}

func (s *CartQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCartQueriesSuite(t *testing.T) {
	suite.Run(t, new(CartQueriesTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("missing", nil, infra.KindNotFound)
}

func (s *CartQueriesTestSuite) expectCartToken() {
	s.tokens.EXPECT().Get(gomock.Any(), s.clientID, shared.CartIDTokenName).Return(testCartID, nil)
}

func (s *CartQueriesTestSuite) expectNoSelectionToken() {
	s.tokens.EXPECT().Get(gomock.Any(), s.clientID, shared.SelectionTokenName).Return("", notFoundErr())
}

func (s *CartQueriesTestSuite) TestGetCart_NoCartTokenReturnsEmptyView() {
	s.tokens.EXPECT().Get(gomock.Any(), s.clientID, shared.CartIDTokenName).Return("", notFoundErr())

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Empty(view.Lines)
	s.Equal(0, view.TotalQuantity)
	s.Equal("0.00", view.Cost.Total.Amount)
	s.Equal("USD", view.Cost.Total.CurrencyCode)
	s.Equal(string(store.StateAuthoritative), view.SyncState)
}

func (s *CartQueriesTestSuite) TestGetCart_ServesAuthoritativeSnapshotWithoutBackendRead() {
	seeded := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 2, "10").
		Build()
	s.registry.For(testCartID).SeedAuthoritative(seeded)

	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(false)
	s.expectNoSelectionToken()

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Require().Len(view.Lines, 1)
	s.Equal("20.00", view.Cost.Total.Amount)
	s.Equal(string(store.StateAuthoritative), view.SyncState)
}

func (s *CartQueriesTestSuite) TestGetCart_FirstTouchFetchesFromBackend() {
	// No store has been seeded for this cart yet; the unseeded snapshot
	// must not be served as if the backend confirmed it.
	fresh := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 3, "10").
		Build()

	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(false)
	s.backend.EXPECT().GetCart(gomock.Any(), testCartID).Return(&fresh, nil)
	s.stale.EXPECT().ClearStale(testCartID)
	s.expectNoSelectionToken()

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Equal(3, view.TotalQuantity)
	s.Equal(string(store.StateAuthoritative), view.SyncState)
}

func (s *CartQueriesTestSuite) TestGetCart_StaleSnapshotForcesRefetch() {
	stale := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 1, "10").
		Build()
	s.registry.For(testCartID).SeedAuthoritative(stale)

	fresh := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 4, "10").
		Build()

	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(true)
	s.backend.EXPECT().GetCart(gomock.Any(), testCartID).Return(&fresh, nil)
	s.stale.EXPECT().ClearStale(testCartID)
	s.expectNoSelectionToken()

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Equal(4, view.TotalQuantity)

	// The store was re-seeded wholesale, discarding the stale snapshot.
	snap, state := s.registry.For(testCartID).Snapshot()
	s.Equal(store.StateAuthoritative, state)
	s.Equal(4, snap.TotalQuantity)
}

func (s *CartQueriesTestSuite) TestGetCart_SpeculativeSnapshotForcesRefetch() {
	seeded := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 1, "10").
		Build()
	st := s.registry.For(testCartID)
	st.SeedAuthoritative(seeded)
	st.BeginReconcile()
	st.ReconcileSucceeded()

	fresh := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 2, "10").
		Build()

	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(false)
	s.backend.EXPECT().GetCart(gomock.Any(), testCartID).Return(&fresh, nil)
	s.stale.EXPECT().ClearStale(testCartID)
	s.expectNoSelectionToken()

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Equal(2, view.TotalQuantity)
}

func (s *CartQueriesTestSuite) TestGetCart_BackendMissingCartYieldsEmptyView() {
	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(true)
	s.backend.EXPECT().GetCart(gomock.Any(), testCartID).Return(nil, notFoundErr())
	s.stale.EXPECT().ClearStale(testCartID)
	s.expectNoSelectionToken()

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Equal(testCartID, view.ID)
	s.Empty(view.Lines)
	s.Equal("0.00", view.Cost.Total.Amount)
	s.Equal(string(store.StateAuthoritative), view.SyncState)
}

func (s *CartQueriesTestSuite) TestGetCart_SelectionTokenScopesView() {
	seeded := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 2, "10").
		WithLine("variant-b", 1, "5").
		Build()
	s.registry.For(testCartID).SeedAuthoritative(seeded)

	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(false)
	s.tokens.EXPECT().Get(gomock.Any(), s.clientID, shared.SelectionTokenName).Return("variant-b", nil)

	view, err := s.queries.GetCart(s.ctx, s.clientID, nil)
	s.Require().NoError(err)
	s.Require().Len(view.Lines, 1)
	s.Equal("variant-b", view.Lines[0].MerchandiseID)
	s.Equal("5.00", view.Cost.Total.Amount)
}

func (s *CartQueriesTestSuite) TestGetCart_OverrideBeatsSelectionToken() {
	seeded := builder.NewCartBuilder().
		WithID(testCartID).
		WithLine("variant-a", 2, "10").
		WithLine("variant-b", 1, "5").
		Build()
	s.registry.For(testCartID).SeedAuthoritative(seeded)

	s.expectCartToken()
	s.stale.EXPECT().IsStale(testCartID).Return(false)

	override := "variant-a"
	view, err := s.queries.GetCart(s.ctx, s.clientID, &override)
	s.Require().NoError(err)
	s.Require().Len(view.Lines, 1)
	s.Equal("variant-a", view.Lines[0].MerchandiseID)
}
