package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/application/dto"
	"github.com/channelry/merchant-api/internal/domain"
)

const (
	merchantA = "merchant-a"
	merchantB = "merchant-b"
)

func newUseCase(s *memStore) *catalog.UseCase {
	return catalog.NewUseCase(s, &memInventoryRepo{s}, &memListingRepo{s}, &memMenuRepo{s}, &memTxRunner{s}, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento por merchant
// ──────────────────────────────────────────────────────────────────────────────

// Un producto del merchant A nunca es visible en un lookup scoped a B.
func TestRetrieve_ProductoDeOtroMerchant_Retorna404(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	uc := newUseCase(s)

	out, err := uc.Retrieve(context.Background(), merchantB, "uid-1", "CAFE-250")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un uid ajeno debe comportarse como inexistente")

	// El dueño sí lo ve.
	out, err = uc.Retrieve(context.Background(), merchantA, "uid-1", "CAFE-250")
	require.NoError(t, err)
	assert.Equal(t, "CAFE-250", out.Inventory.SKU)
	assert.Equal(t, "uid-1", out.Product.UID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de SKUs
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateForProduct_SKUDuplicado_Retorna409(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	uc := newUseCase(s)

	in := dto.CreateInventoryRequest{SKU: "CAFE-250", Quantity: 5, Price: decimal.RequireFromString("9.90")}
	_, err := uc.CreateForProduct(context.Background(), merchantA, "uid-1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el par (producto, sku) es único; el duplicado no debe insertarse en silencio")
}

func TestCreateForProduct_UIDDesconocido_Retorna404(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	in := dto.CreateInventoryRequest{SKU: "X-1", Quantity: 1, Price: decimal.NewFromInt(1)}
	_, err := uc.CreateForProduct(context.Background(), merchantA, "no-existe", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateForProduct_DatosInvalidos(t *testing.T) {
	s := newMemStore()
	s.seedProduct(merchantA, "uid-1", "Café")
	uc := newUseCase(s)

	cases := []dto.CreateInventoryRequest{
		{SKU: "", Quantity: 1, Price: decimal.NewFromInt(1)},
		{SKU: "X", Quantity: -1, Price: decimal.NewFromInt(1)},
		{SKU: "X", Quantity: 1, Price: decimal.NewFromInt(-1)},
	}
	for _, in := range cases {
		_, err := uc.CreateForProduct(context.Background(), merchantA, "uid-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateForProduct_OK_NuevoSKUActivo(t *testing.T) {
	s := newMemStore()
	s.seedProduct(merchantA, "uid-1", "Café")
	uc := newUseCase(s)

	in := dto.CreateInventoryRequest{SKU: "CAFE-500", Quantity: 3, Price: decimal.RequireFromString("19.90")}
	out, err := uc.CreateForProduct(context.Background(), merchantA, "uid-1", in)
	require.NoError(t, err)
	assert.True(t, out.IsActive, "un SKU nuevo nace activo")
	assert.Equal(t, 3, out.Quantity)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("19.90")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

// Solo los campos enviados cambian; el resto de la fila queda intacto.
func TestUpdateInventory_SoloCamposEnviados(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	uc := newUseCase(s)

	qty := 42
	out, err := uc.UpdateInventory(context.Background(), merchantA, "uid-1", "CAFE-250",
		dto.UpdateInventoryRequest{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 42, out.Quantity)
	assert.Equal(t, "CAFE-250", out.SKU, "sku no enviado, no debe cambiar")
	assert.True(t, out.Price.Equal(decimal.RequireFromString("12.50")), "price no enviado, no debe cambiar")
	assert.True(t, out.IsActive, "is_active no enviado, no debe cambiar")
}

func TestUpdateInventory_SKUColisiona_Retorna409(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	s.seedInventory(p.ID, "CAFE-500", 4, "19.90", true)
	uc := newUseCase(s)

	sku := "CAFE-500"
	_, err := uc.UpdateInventory(context.Background(), merchantA, "uid-1", "CAFE-250",
		dto.UpdateInventoryRequest{SKU: &sku})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Publicación en menús
// ──────────────────────────────────────────────────────────────────────────────

// Vincular a [M1, M2] crea exactamente dos listings, uno por menú.
func TestLinkMenus_DosMenus_DosListings(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	inv := s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	s.seedMenu(merchantA, "menu-1", "Desayunos")
	s.seedMenu(merchantA, "menu-2", "Tardes")
	uc := newUseCase(s)

	out, err := uc.LinkMenus(context.Background(), merchantA, "uid-1", "CAFE-250", []string{"menu-1", "menu-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Linked)
	require.Len(t, out.Listings, 2)
	menuIDs := []string{out.Listings[0].MenuID, out.Listings[1].MenuID}
	assert.ElementsMatch(t, []string{"menu-1", "menu-2"}, menuIDs)
	for _, l := range out.Listings {
		assert.Equal(t, inv.ID, l.InventoryID)
	}
}

// El par (inventory, menu) repetido se salta sin error.
func TestLinkMenus_ParRepetido_NoDuplica(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	s.seedMenu(merchantA, "menu-1", "Desayunos")
	uc := newUseCase(s)

	out, err := uc.LinkMenus(context.Background(), merchantA, "uid-1", "CAFE-250", []string{"menu-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Linked)

	out, err = uc.LinkMenus(context.Background(), merchantA, "uid-1", "CAFE-250", []string{"menu-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Linked, "el segundo link del mismo par no crea filas")
	assert.Len(t, out.Listings, 1)
}

// Un menú de otro merchant invalida el link completo.
func TestLinkMenus_MenuAjeno_Retorna404(t *testing.T) {
	s := newMemStore()
	p := s.seedProduct(merchantA, "uid-1", "Café")
	s.seedInventory(p.ID, "CAFE-250", 10, "12.50", true)
	s.seedMenu(merchantB, "menu-b", "Ajeno")
	uc := newUseCase(s)

	_, err := uc.LinkMenus(context.Background(), merchantA, "uid-1", "CAFE-250", []string{"menu-b"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.listings, "no debe quedar ningún listing creado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestListInventory_SoloDelMerchant(t *testing.T) {
	s := newMemStore()
	pa := s.seedProduct(merchantA, "uid-a", "Café")
	s.seedInventory(pa.ID, "CAFE-250", 10, "12.50", true)
	pb := s.seedProduct(merchantB, "uid-b", "Té")
	s.seedInventory(pb.ID, "TE-100", 5, "8.00", true)
	uc := newUseCase(s)

	out, err := uc.ListInventory(context.Background(), merchantA, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "uid-a", out.Items[0].Product.UID)
	require.Len(t, out.Items[0].Inventory, 1)
	assert.Equal(t, "CAFE-250", out.Items[0].Inventory[0].SKU)
}
