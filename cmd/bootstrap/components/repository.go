package components

import (
	"storefront-cart/internal/infra/cache"
	repo_impl "storefront-cart/internal/infra/repository"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartBackend)),
			fx.As(new(queries.CartReadStore)),
		),
		repo_impl.NewVariantRepository,
		fx.Annotate(
			NewCachedVariantResolver,
			fx.As(new(commands.VariantResolver)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponResolver)),
		),
		fx.Annotate(
			repo_impl.NewTokenRepository,
			fx.As(new(commands.TokenStore)),
			fx.As(new(queries.TokenReader)),
		),
		fx.Annotate(
			cache.NewStalenessTracker,
			fx.As(new(commands.CacheInvalidator)),
			fx.As(new(queries.StalenessTracker)),
		),
	),
)

// NewCachedVariantResolver puts the LRU in front of the catalog repository.
func NewCachedVariantResolver(repo *repo_impl.VariantRepository, cfg config.Config) (*cache.VariantCache, error) {
	return cache.NewVariantCache(repo, cfg)
}
