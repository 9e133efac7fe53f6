package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/pgconv"
)

// TokenRepository stores small per-client values (cart id, selection) with
// an expiry. Expired rows read as not found; writers overwrite in place.
type TokenRepository struct {
	db  *pgxpool.Pool
	clk clock.Clock
}

func NewTokenRepository(db *pgxpool.Pool, clk clock.Clock) *TokenRepository {
	return &TokenRepository{db: db, clk: clk}
}

const getTokenQuery = `
SELECT value FROM client_tokens
WHERE client_id = $1 AND name = $2 AND (expires_at IS NULL OR expires_at > $3)
`

func (r *TokenRepository) Get(ctx context.Context, clientID uuid.UUID, name string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, getTokenQuery, clientID, name, r.clk.Now()).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("token not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get token", err)
	}
	return value, nil
}

func (r *TokenRepository) Set(ctx context.Context, clientID uuid.UUID, name, value string, ttl time.Duration) error {
	if ttl <= 0 {
		_, err := r.db.Exec(ctx,
			`DELETE FROM client_tokens WHERE client_id = $1 AND name = $2`,
			clientID, name,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to clear token", err)
		}
		return nil
	}

	expiresAt := r.clk.Now().Add(ttl)
	_, err := r.db.Exec(ctx,
		`INSERT INTO client_tokens (client_id, name, value, expires_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (client_id, name)
		 DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		clientID, name, value, expiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set token", err)
	}
	return nil
}
