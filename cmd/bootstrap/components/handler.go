package components

import (
	"storefront-cart/internal/handler"
	"storefront-cart/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
	),
	fx.Invoke(handler.NewRouter),
)
