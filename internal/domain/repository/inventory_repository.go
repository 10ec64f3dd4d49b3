package repository

import "github.com/channelry/merchant-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory.
// Las operaciones masivas reciben merchantID para que filas de otro
// merchant dentro del set de IDs simplemente no cuenten como afectadas.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetByProductAndSKU(productID, sku string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	ListByProduct(productID string) ([]*entity.Inventory, error)
	// BulkSetActive fija is_active para los IDs dados (scoped por merchant)
	// y devuelve cuántas filas quedaron en el estado pedido. Idempotente:
	// una fila que ya estaba en el estado cuenta como afectada.
	BulkSetActive(merchantID string, ids []string, active bool) (int, error)
}
