package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/pgconv"
	"storefront-cart/internal/usecase/commands"
)

type VariantRepository struct {
	db *pgxpool.Pool
}

func NewVariantRepository(db *pgxpool.Pool) *VariantRepository {
	return &VariantRepository{db: db}
}

const resolveVariantQuery = `
SELECT id, title, product_slug, product_title, image_url, price::text, currency,
       product_id, object_id, group_id, item_type, cart_type
FROM variants
WHERE id = $1
`

func (r *VariantRepository) GetVariantByID(ctx context.Context, merchandiseID string) (*commands.VariantSnapshot, error) {
	var (
		id           string
		title        string
		productSlug  string
		productTitle string
		imageURL     pgtype.Text
		priceText    string
		currency     string
		productID    pgtype.Int8
		objectID     pgtype.Int8
		groupID      pgtype.Int8
		itemType     pgtype.Int8
		cartType     pgtype.Int8
	)
	err := r.db.QueryRow(ctx, resolveVariantQuery, merchandiseID).Scan(
		&id, &title, &productSlug, &productTitle, &imageURL, &priceText, &currency,
		&productID, &objectID, &groupID, &itemType, &cartType,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve variant", err)
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid variant price", err)
	}

	snap := &commands.VariantSnapshot{
		MerchandiseID: id,
		VariantTitle:  title,
		ProductSlug:   productSlug,
		ProductTitle:  productTitle,
		ImageURL:      imageURL.String,
		UnitPrice:     cart.NewMoney(price, currency),
	}

	// Backend identifiers are all-or-nothing; a variant without the full
	// numeric set goes through the generic mutation path.
	pid := pgconv.Int64PtrFromPgtype(productID)
	oid := pgconv.Int64PtrFromPgtype(objectID)
	gid := pgconv.Int64PtrFromPgtype(groupID)
	itype := pgconv.Int64PtrFromPgtype(itemType)
	ctype := pgconv.Int64PtrFromPgtype(cartType)
	if pid != nil && oid != nil && gid != nil && itype != nil && ctype != nil {
		snap.Backend = &commands.BackendIdentifiers{
			ProductID: *pid,
			ObjectID:  *oid,
			GroupID:   *gid,
			ItemType:  *itype,
			CartType:  *ctype,
		}
	}

	return snap, nil
}
