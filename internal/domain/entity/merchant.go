package entity

import "time"

// Merchant es la raíz de tenencia: todo producto, menú y usuario pertenece a un merchant.
type Merchant struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
