package repository

import "github.com/channelry/merchant-api/internal/domain/entity"

// MenuRepository define el puerto de persistencia para Menu.
type MenuRepository interface {
	Create(menu *entity.Menu) error
	GetByID(id string) (*entity.Menu, error)
	ListByMerchant(merchantID string) ([]*entity.Menu, error)
}
