package postgres

import (
	"context"
	"fmt"

	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

// ListingRepo implementación del puerto ListingRepository sobre PostgreSQL (usable con pool o tx).
type ListingRepo struct {
	q Querier
}

// NewListingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewListingRepository(q Querier) *ListingRepo {
	return &ListingRepo{q: q}
}

// Create inserta un listing. Un par (inventory_id, menu_id) ya existente
// se ignora vía ON CONFLICT DO NOTHING y retorna created=false.
func (r *ListingRepo) Create(listing *entity.Listing) (bool, error) {
	query := `
		INSERT INTO listings (id, inventory_id, menu_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (inventory_id, menu_id) DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query,
		listing.ID, listing.InventoryID, listing.MenuID, listing.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert listing: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByInventory lista los listings de un SKU.
func (r *ListingRepo) ListByInventory(inventoryID string) ([]*entity.Listing, error) {
	query := `
		SELECT id, inventory_id, menu_id, created_at
		FROM listings WHERE inventory_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(&l.ID, &l.InventoryID, &l.MenuID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteByInventories elimina los listings de los SKUs dados, solo sobre
// filas cuyo producto pertenece al merchant.
func (r *ListingRepo) DeleteByInventories(merchantID string, inventoryIDs []string) (int, error) {
	query := `
		DELETE FROM listings l
		USING inventory i, products p
		WHERE l.inventory_id = i.id AND i.product_id = p.id
		  AND p.merchant_id = $1 AND l.inventory_id = ANY($2)`
	cmd, err := r.q.Exec(context.Background(), query, merchantID, inventoryIDs)
	if err != nil {
		return 0, fmt.Errorf("delete listings: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
