package repository

import "github.com/channelry/merchant-api/internal/domain/entity"

// ListingRepository define el puerto de persistencia para Listing.
type ListingRepository interface {
	// Create inserta un listing; el par (inventory_id, menu_id) duplicado
	// se ignora (created=false) en lugar de fallar.
	Create(listing *entity.Listing) (created bool, err error)
	ListByInventory(inventoryID string) ([]*entity.Listing, error)
	// DeleteByInventories elimina los listings de los SKUs dados (scoped por
	// merchant) y devuelve cuántos se eliminaron.
	DeleteByInventories(merchantID string, inventoryIDs []string) (int, error)
}
