package catalog

import "github.com/channelry/merchant-api/internal/domain"

// Action es la enumeración cerrada de acciones masivas sobre inventario.
// Cualquier string fuera del conjunto debe fallar en ParseAction antes de
// tocar datos; el dispatcher hace switch exhaustivo sobre estos valores.
type Action string

const (
	// ActionActivate marca los SKUs seleccionados como activos (inactive → active).
	ActionActivate Action = "activate"
	// ActionDeactivate marca los SKUs seleccionados como inactivos (active → inactive).
	ActionDeactivate Action = "deactivate"
	// ActionDelete es el equivalente a eliminar: quita los listings del SKU
	// y lo desactiva. No hay borrado físico de filas de inventario.
	ActionDelete Action = "delete"
)

// ParseAction valida un nombre de acción recibido por HTTP.
// Devuelve domain.ErrUnknownAction para valores fuera del conjunto;
// nunca un no-op silencioso.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionActivate, ActionDeactivate, ActionDelete:
		return Action(s), nil
	}
	return "", domain.ErrUnknownAction
}

// String devuelve el nombre de la acción tal como viaja por la API.
func (a Action) String() string { return string(a) }
