package catalog

import (
	"context"

	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción SQL (Commit si fn retorna nil, Rollback si no).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		listingRepo repository.ListingRepository,
		menuRepo repository.MenuRepository,
	) error) error
}

// ProductCache cache de lectura para lookups producto-por-UID.
// Get devuelve (nil, nil) en miss; los errores del cache nunca deben
// tumbar la petición, el caller cae a la base de datos.
type ProductCache interface {
	Get(ctx context.Context, merchantID, uid string) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, merchantID, uid string) error
}
