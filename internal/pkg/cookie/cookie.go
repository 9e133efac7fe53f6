package cookie

import (
	"net/http"
	"time"

	"storefront-cart/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ClientIDCookieName = "cart_client_id"

	// Browsers cap cookie lifetime anyway; one year is effectively "durable".
	clientIDLifetime = 365 * 24 * time.Hour
)

// EnsureClientID returns the per-client identifier carried by the request,
// minting and setting a new one when absent or malformed.
func EnsureClientID(c *gin.Context, cfg config.CookieConfig) uuid.UUID {
	if raw, err := c.Cookie(ClientIDCookieName); err == nil {
		if id, parseErr := uuid.Parse(raw); parseErr == nil {
			return id
		}
	}

	id := uuid.New()
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		ClientIDCookieName,
		id.String(),
		int(clientIDLifetime.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
