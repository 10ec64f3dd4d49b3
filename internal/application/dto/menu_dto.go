package dto

import "time"

// CreateMenuRequest body para POST /api/menus.
type CreateMenuRequest struct {
	Name string `json:"name"`
}

// MenuResponse representación pública de un menú.
type MenuResponse struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MenuListResponse listado de menús del merchant.
type MenuListResponse struct {
	Items []MenuResponse `json:"items"`
}
