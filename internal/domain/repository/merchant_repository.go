package repository

import "github.com/channelry/merchant-api/internal/domain/entity"

// MerchantRepository define el puerto de persistencia para Merchant.
type MerchantRepository interface {
	Create(merchant *entity.Merchant) error
	GetByID(id string) (*entity.Merchant, error)
}
