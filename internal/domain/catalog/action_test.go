package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channelry/merchant-api/internal/domain"
	"github.com/channelry/merchant-api/internal/domain/catalog"
)

func TestParseAction_ValoresConocidos(t *testing.T) {
	for _, s := range []string{"activate", "deactivate", "delete"} {
		action, err := catalog.ParseAction(s)
		require.NoError(t, err, "la acción %q debe ser reconocida", s)
		assert.Equal(t, s, action.String())
	}
}

func TestParseAction_ValorDesconocido_Falla(t *testing.T) {
	// Un nombre fuera de la enumeración debe fallar fuerte, nunca un
	// no-op silencioso.
	_, err := catalog.ParseAction("archive")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	_, err = catalog.ParseAction("")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	// Sensible a mayúsculas: la API siempre envía minúsculas.
	_, err = catalog.ParseAction("Activate")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}
