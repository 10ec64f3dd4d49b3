package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventory/create.
// ProductUID identifica el producto dueño; en la variante con uid en la
// ruta el campo del body se ignora.
type CreateInventoryRequest struct {
	ProductUID string          `json:"product_uid,omitempty"`
	SKU        string          `json:"sku"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:uid/:sku.
// Campos nil no se tocan (update parcial). Si MenuIDs viene no vacío la
// petición es un link de menús y los demás campos se ignoran, igual que
// el formulario original.
type UpdateInventoryRequest struct {
	SKU      *string          `json:"sku,omitempty"`
	Quantity *int             `json:"quantity,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
	MenuIDs  []string         `json:"menu_ids,omitempty"`
}

// InventoryResponse representación pública de un SKU.
type InventoryResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ListingResponse representación pública de un listing.
type ListingResponse struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	MenuID      string    `json:"menu_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LinkMenusResponse resultado de un link de menús a un SKU.
type LinkMenusResponse struct {
	Linked   int               `json:"linked"`
	Listings []ListingResponse `json:"listings"`
}

// InventoryDetailResponse SKU con su producto y listings (GET /:uid/:sku).
type InventoryDetailResponse struct {
	Inventory InventoryResponse `json:"inventory"`
	Product   ProductResponse   `json:"product"`
	Listings  []ListingResponse `json:"listings"`
}

// ProductInventoryResponse producto con sus SKUs (listado de inventario).
type ProductInventoryResponse struct {
	Product   ProductResponse     `json:"product"`
	Inventory []InventoryResponse `json:"inventory"`
}

// InventoryListResponse respuesta de GET /api/inventory.
type InventoryListResponse struct {
	Items []ProductInventoryResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}

// PerformRequest body para POST /api/inventory/perform.
type PerformRequest struct {
	Action       string   `json:"action"`
	InventoryIDs []string `json:"inventory_ids"`
}

// PerformResponse resultado de una acción masiva.
type PerformResponse struct {
	Action   string `json:"action"`
	Affected int    `json:"affected"`
}
