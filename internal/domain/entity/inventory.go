package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory representa una variante almacenable (SKU) de un Product.
// SKU es único por producto; Quantity y Price nunca negativos.
// No se borra físicamente desde los flujos del módulo: desactivar
// (IsActive=false) es el equivalente a eliminar.
type Inventory struct {
	ID        string
	ProductID string
	SKU       string
	Quantity  int
	Price     decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
