package entity

import "time"

// Menu representa un menú publicable de un merchant.
type Menu struct {
	ID         string
	MerchantID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
