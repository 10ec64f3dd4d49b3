package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/channelry/merchant-api/internal/domain"
	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un nuevo SKU. (product_id, sku) único a nivel de tabla.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, sku, quantity, price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.SKU, inv.Quantity, inv.Price, inv.IsActive,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, sku, quantity, price, is_active, created_at, updated_at
		FROM inventory WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByProductAndSKU obtiene un SKU por producto y código.
func (r *InventoryRepo) GetByProductAndSKU(productID, sku string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, sku, quantity, price, is_active, created_at, updated_at
		FROM inventory WHERE product_id = $1 AND sku = $2`
	return r.scanOne(query, productID, sku)
}

// Update actualiza los campos mutables de un SKU (sku, quantity, price, is_active).
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET sku = $2, quantity = $3, price = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.SKU, inv.Quantity, inv.Price, inv.IsActive, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// ListByProduct lista los SKUs de un producto.
func (r *InventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, sku, quantity, price, is_active, created_at, updated_at
		FROM inventory WHERE product_id = $1 ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.SKU, &inv.Quantity, &inv.Price,
			&inv.IsActive, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// BulkSetActive fija is_active para los IDs dados, solo sobre filas cuyo
// producto pertenece al merchant. Filas ya en el estado pedido cuentan
// como afectadas (el UPDATE las matchea igual), lo que hace la operación
// idempotente.
func (r *InventoryRepo) BulkSetActive(merchantID string, ids []string, active bool) (int, error) {
	query := `
		UPDATE inventory i SET is_active = $3, updated_at = now()
		FROM products p
		WHERE p.id = i.product_id AND p.merchant_id = $1 AND i.id = ANY($2)`
	cmd, err := r.q.Exec(context.Background(), query, merchantID, ids, active)
	if err != nil {
		return 0, fmt.Errorf("bulk set active: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

func (r *InventoryRepo) scanOne(query string, args ...any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.ProductID, &inv.SKU, &inv.Quantity, &inv.Price,
		&inv.IsActive, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}
