package catalog

import (
	"context"

	"github.com/channelry/merchant-api/internal/domain"
	domaincatalog "github.com/channelry/merchant-api/internal/domain/catalog"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// Actioner aplica una acción masiva sobre un conjunto de SKUs
// seleccionados, en una sola transacción y scoped al merchant. Las
// transiciones son idempotentes: repetir la misma acción sobre el mismo
// set deja el mismo estado final.
type Actioner struct {
	txRunner TxRunner
}

// NewActioner construye el dispatcher de acciones masivas.
func NewActioner(txRunner TxRunner) *Actioner {
	return &Actioner{txRunner: txRunner}
}

// Dispatch ejecuta la acción sobre los IDs dados y devuelve cuántas filas
// quedaron afectadas. Un set vacío no muta nada y reporta cero. IDs de
// otro merchant no cuentan. El switch es exhaustivo sobre la enumeración;
// un valor fuera de ella retorna domain.ErrUnknownAction sin mutar.
func (a *Actioner) Dispatch(ctx context.Context, merchantID string, action domaincatalog.Action, inventoryIDs []string) (int, error) {
	switch action {
	case domaincatalog.ActionActivate, domaincatalog.ActionDeactivate, domaincatalog.ActionDelete:
	default:
		return 0, domain.ErrUnknownAction
	}
	if len(inventoryIDs) == 0 {
		return 0, nil
	}

	affected := 0
	err := a.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		listingRepo repository.ListingRepository,
		_ repository.MenuRepository,
	) error {
		var err error
		switch action {
		case domaincatalog.ActionActivate:
			affected, err = invRepo.BulkSetActive(merchantID, inventoryIDs, true)
		case domaincatalog.ActionDeactivate:
			affected, err = invRepo.BulkSetActive(merchantID, inventoryIDs, false)
		case domaincatalog.ActionDelete:
			// Equivalente a eliminar: quitar listings y desactivar las filas.
			if _, err = listingRepo.DeleteByInventories(merchantID, inventoryIDs); err != nil {
				return err
			}
			affected, err = invRepo.BulkSetActive(merchantID, inventoryIDs, false)
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
