package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/commands"
)

// VariantCache decorates a VariantResolver with an LRU of resolved
// snapshots. Catalog rows change rarely; misses and errors fall through.
type VariantCache struct {
	inner commands.VariantResolver
	cache *lru.Cache[string, *commands.VariantSnapshot]
}

func NewVariantCache(inner commands.VariantResolver, cfg config.Config) (*VariantCache, error) {
	c, err := lru.New[string, *commands.VariantSnapshot](cfg.Cart.VariantCacheSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build variant cache")
	}
	return &VariantCache{inner: inner, cache: c}, nil
}

func (v *VariantCache) GetVariantByID(ctx context.Context, variantID string) (*commands.VariantSnapshot, error) {
	if snap, ok := v.cache.Get(variantID); ok {
		return snap, nil
	}
	snap, err := v.inner.GetVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	v.cache.Add(variantID, snap)
	return snap, nil
}
