package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/channelry/merchant-api/internal/application/dto"
	"github.com/channelry/merchant-api/internal/domain"
	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// UseCase casos de uso del módulo de inventario: listar, crear, consultar,
// actualizar y publicar SKUs en menús. Todas las lecturas de producto van
// filtradas por merchant; un uid ajeno se comporta como inexistente.
type UseCase struct {
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	listingRepo repository.ListingRepository
	menuRepo    repository.MenuRepository
	txRunner    TxRunner
	cache       ProductCache // opcional, nil = sin cache
}

// NewUseCase construye el caso de uso. cache puede ser nil.
func NewUseCase(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	listingRepo repository.ListingRepository,
	menuRepo repository.MenuRepository,
	txRunner TxRunner,
	cache ProductCache,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		invRepo:     invRepo,
		listingRepo: listingRepo,
		menuRepo:    menuRepo,
		txRunner:    txRunner,
		cache:       cache,
	}
}

// getProduct resuelve (merchant, uid) → producto, pasando por el cache si
// está configurado. Devuelve domain.ErrNotFound si no existe o pertenece
// a otro merchant.
func (uc *UseCase) getProduct(ctx context.Context, merchantID, uid string) (*entity.Product, error) {
	if uc.cache != nil {
		if p, err := uc.cache.Get(ctx, merchantID, uid); err == nil && p != nil {
			return p, nil
		}
	}
	product, err := uc.productRepo.GetByMerchantAndUID(merchantID, uid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, product); err != nil {
			log.Warn().Err(err).Str("uid", uid).Msg("cache de producto no disponible")
		}
	}
	return product, nil
}

// ListInventory lista los productos del merchant con sus SKUs.
func (uc *UseCase) ListInventory(ctx context.Context, merchantID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByMerchant(merchantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductInventoryResponse, 0, len(products))
	for _, p := range products {
		invs, err := uc.invRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		rows := make([]dto.InventoryResponse, 0, len(invs))
		for _, inv := range invs {
			rows = append(rows, *toInventoryResponse(inv))
		}
		items = append(items, dto.ProductInventoryResponse{
			Product:   *toProductResponse(p),
			Inventory: rows,
		})
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// CreateInventory crea un SKU; el producto dueño viene en el body como uid.
func (uc *UseCase) CreateInventory(ctx context.Context, merchantID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ProductUID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.CreateForProduct(ctx, merchantID, in.ProductUID, in)
}

// CreateForProduct crea un SKU para el producto identificado por uid.
// Rechaza (product, sku) duplicado con domain.ErrDuplicate.
func (uc *UseCase) CreateForProduct(ctx context.Context, merchantID, uid string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.SKU == "" || in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.getProduct(ctx, merchantID, uid)
	if err != nil {
		return nil, err
	}
	existing, _ := uc.invRepo.GetByProductAndSKU(product.ID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		SKU:       in.SKU,
		Quantity:  in.Quantity,
		Price:     in.Price,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Retrieve resuelve (uid, sku) → SKU con su producto y listings.
func (uc *UseCase) Retrieve(ctx context.Context, merchantID, uid, sku string) (*dto.InventoryDetailResponse, error) {
	product, err := uc.getProduct(ctx, merchantID, uid)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invRepo.GetByProductAndSKU(product.ID, sku)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	listings, err := uc.listingRepo.ListByInventory(inv.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryDetailResponse{
		Inventory: *toInventoryResponse(inv),
		Product:   *toProductResponse(product),
		Listings:  make([]dto.ListingResponse, 0, len(listings)),
	}
	for _, l := range listings {
		out.Listings = append(out.Listings, *toListingResponse(l))
	}
	return out, nil
}

// UpdateInventory aplica un update parcial sobre quantity/price/sku/is_active.
// Campos nil no se tocan; el resto de la fila queda intacto.
func (uc *UseCase) UpdateInventory(ctx context.Context, merchantID, uid, sku string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	product, err := uc.getProduct(ctx, merchantID, uid)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invRepo.GetByProductAndSKU(product.ID, sku)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != inv.SKU {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		other, _ := uc.invRepo.GetByProductAndSKU(product.ID, *in.SKU)
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		inv.SKU = *in.SKU
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		inv.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		inv.Price = *in.Price
	}
	if in.IsActive != nil {
		inv.IsActive = *in.IsActive
	}
	inv.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// LinkMenus publica el SKU (uid, sku) en los menús dados: un listing por
// menú, todos dentro de una transacción. Los menús deben existir y
// pertenecer al merchant. Un par (inventory, menu) ya existente se salta
// sin error.
func (uc *UseCase) LinkMenus(ctx context.Context, merchantID, uid, sku string, menuIDs []string) (*dto.LinkMenusResponse, error) {
	if len(menuIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.getProduct(ctx, merchantID, uid)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invRepo.GetByProductAndSKU(product.ID, sku)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	for _, menuID := range menuIDs {
		menu, err := uc.menuRepo.GetByID(menuID)
		if err != nil {
			return nil, err
		}
		if menu == nil || menu.MerchantID != merchantID {
			return nil, domain.ErrNotFound
		}
	}

	linked := 0
	err = uc.txRunner.Run(ctx, func(
		_ repository.InventoryRepository,
		listingRepo repository.ListingRepository,
		_ repository.MenuRepository,
	) error {
		now := time.Now()
		for _, menuID := range menuIDs {
			created, err := listingRepo.Create(&entity.Listing{
				ID:          uuid.New().String(),
				InventoryID: inv.ID,
				MenuID:      menuID,
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
			if created {
				linked++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	listings, err := uc.listingRepo.ListByInventory(inv.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.LinkMenusResponse{Linked: linked, Listings: make([]dto.ListingResponse, 0, len(listings))}
	for _, l := range listings {
		out.Listings = append(out.Listings, *toListingResponse(l))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		MerchantID:  p.MerchantID,
		UID:         p.UID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:        inv.ID,
		ProductID: inv.ProductID,
		SKU:       inv.SKU,
		Quantity:  inv.Quantity,
		Price:     inv.Price,
		IsActive:  inv.IsActive,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func toListingResponse(l *entity.Listing) *dto.ListingResponse {
	if l == nil {
		return nil
	}
	return &dto.ListingResponse{
		ID:          l.ID,
		InventoryID: l.InventoryID,
		MenuID:      l.MenuID,
		CreatedAt:   l.CreatedAt,
	}
}
