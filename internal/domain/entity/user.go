package entity

import "time"

// User representa un usuario del sistema (pertenece a un Merchant).
type User struct {
	ID           string
	MerchantID   string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
