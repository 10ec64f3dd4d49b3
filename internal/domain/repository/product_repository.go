package repository

import "github.com/channelry/merchant-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda lectura desde el módulo de inventario va filtrada por merchant:
// un producto de otro merchant se comporta como inexistente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByMerchantAndUID(merchantID, uid string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByMerchant(merchantID string, limit, offset int) ([]*entity.Product, error)
}
