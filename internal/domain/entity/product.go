package entity

import "time"

// Product representa un producto del catálogo de un merchant.
// UID es el identificador externo usado en URLs; único por merchant.
// El módulo de inventario lo trata como solo lectura: las variantes
// vendibles (SKU, precio, cantidad) viven en Inventory.
type Product struct {
	ID          string
	MerchantID  string
	UID         string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
