package catalog_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore implementa los cuatro puertos de
// persistencia y el TxRunner (sin transacción real), reproduciendo el
// scoping por merchant de los adaptadores SQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    []entity.Product
	inventories []entity.Inventory
	listings    []entity.Listing
	menus       []entity.Menu
}

func newMemStore() *memStore { return &memStore{} }

// seedProduct agrega un producto y lo devuelve.
func (s *memStore) seedProduct(merchantID, uid, name string) entity.Product {
	now := time.Now()
	p := entity.Product{
		ID: "prod-" + uid, MerchantID: merchantID, UID: uid, Name: name,
		CreatedAt: now, UpdatedAt: now,
	}
	s.products = append(s.products, p)
	return p
}

// seedInventory agrega un SKU y lo devuelve.
func (s *memStore) seedInventory(productID, sku string, qty int, price string, active bool) entity.Inventory {
	now := time.Now()
	inv := entity.Inventory{
		ID: "inv-" + productID + "-" + sku, ProductID: productID, SKU: sku,
		Quantity: qty, Price: decimal.RequireFromString(price), IsActive: active,
		CreatedAt: now, UpdatedAt: now,
	}
	s.inventories = append(s.inventories, inv)
	return inv
}

// seedMenu agrega un menú y lo devuelve.
func (s *memStore) seedMenu(merchantID, id, name string) entity.Menu {
	now := time.Now()
	m := entity.Menu{ID: id, MerchantID: merchantID, Name: name, CreatedAt: now, UpdatedAt: now}
	s.menus = append(s.menus, m)
	return m
}

func (s *memStore) merchantOf(productID string) string {
	for _, p := range s.products {
		if p.ID == productID {
			return p.MerchantID
		}
	}
	return ""
}

// ProductRepository

func (s *memStore) Create(p *entity.Product) error {
	s.products = append(s.products, *p)
	return nil
}

func (s *memStore) GetByID(id string) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetByMerchantAndUID(merchantID, uid string) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].MerchantID == merchantID && s.products[i].UID == uid {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memStore) Update(p *entity.Product) error {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = *p
		}
	}
	return nil
}

func (s *memStore) ListByMerchant(merchantID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := range s.products {
		if s.products[i].MerchantID == merchantID {
			p := s.products[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

// InventoryRepository (vía wrapper para no chocar con los métodos de Product)

type memInventoryRepo struct{ s *memStore }

var _ repository.InventoryRepository = (*memInventoryRepo)(nil)

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	r.s.inventories = append(r.s.inventories, *inv)
	return nil
}

func (r *memInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	for i := range r.s.inventories {
		if r.s.inventories[i].ID == id {
			inv := r.s.inventories[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) GetByProductAndSKU(productID, sku string) (*entity.Inventory, error) {
	for i := range r.s.inventories {
		if r.s.inventories[i].ProductID == productID && r.s.inventories[i].SKU == sku {
			inv := r.s.inventories[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) Update(inv *entity.Inventory) error {
	for i := range r.s.inventories {
		if r.s.inventories[i].ID == inv.ID {
			r.s.inventories[i] = *inv
		}
	}
	return nil
}

func (r *memInventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for i := range r.s.inventories {
		if r.s.inventories[i].ProductID == productID {
			inv := r.s.inventories[i]
			out = append(out, &inv)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) BulkSetActive(merchantID string, ids []string, active bool) (int, error) {
	affected := 0
	for i := range r.s.inventories {
		inv := &r.s.inventories[i]
		if !contains(ids, inv.ID) || r.s.merchantOf(inv.ProductID) != merchantID {
			continue
		}
		// Igual que el UPDATE SQL: la fila cuenta aunque ya estuviera
		// en el estado pedido.
		inv.IsActive = active
		affected++
	}
	return affected, nil
}

// ListingRepository

type memListingRepo struct{ s *memStore }

var _ repository.ListingRepository = (*memListingRepo)(nil)

func (r *memListingRepo) Create(l *entity.Listing) (bool, error) {
	for i := range r.s.listings {
		if r.s.listings[i].InventoryID == l.InventoryID && r.s.listings[i].MenuID == l.MenuID {
			return false, nil
		}
	}
	r.s.listings = append(r.s.listings, *l)
	return true, nil
}

func (r *memListingRepo) ListByInventory(inventoryID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for i := range r.s.listings {
		if r.s.listings[i].InventoryID == inventoryID {
			l := r.s.listings[i]
			out = append(out, &l)
		}
	}
	return out, nil
}

func (r *memListingRepo) DeleteByInventories(merchantID string, inventoryIDs []string) (int, error) {
	var kept []entity.Listing
	removed := 0
	for _, l := range r.s.listings {
		productID := ""
		for _, inv := range r.s.inventories {
			if inv.ID == l.InventoryID {
				productID = inv.ProductID
			}
		}
		if contains(inventoryIDs, l.InventoryID) && r.s.merchantOf(productID) == merchantID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	r.s.listings = kept
	return removed, nil
}

// MenuRepository

type memMenuRepo struct{ s *memStore }

var _ repository.MenuRepository = (*memMenuRepo)(nil)

func (r *memMenuRepo) Create(m *entity.Menu) error {
	r.s.menus = append(r.s.menus, *m)
	return nil
}

func (r *memMenuRepo) GetByID(id string) (*entity.Menu, error) {
	for i := range r.s.menus {
		if r.s.menus[i].ID == id {
			m := r.s.menus[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memMenuRepo) ListByMerchant(merchantID string) ([]*entity.Menu, error) {
	var out []*entity.Menu
	for i := range r.s.menus {
		if r.s.menus[i].MerchantID == merchantID {
			m := r.s.menus[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

// TxRunner sin transacción real: pasa los repos del mismo store.

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	listingRepo repository.ListingRepository,
	menuRepo repository.MenuRepository,
) error) error {
	return fn(&memInventoryRepo{t.s}, &memListingRepo{t.s}, &memMenuRepo{t.s})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
