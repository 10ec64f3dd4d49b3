package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	appcatalog "github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/application/dto"
	"github.com/channelry/merchant-api/internal/domain"
	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// ProductUseCase CRUD mínimo de productos. Los SKUs (precio, cantidad,
// estado) se manejan en el módulo de inventario, no aquí.
type ProductUseCase struct {
	repo  repository.ProductRepository
	cache appcatalog.ProductCache // opcional, nil = sin cache
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, cache appcatalog.ProductCache) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: cache}
}

// Create crea un producto con un uid externo nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, merchantID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		MerchantID:  merchantID,
		UID:         uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByUID obtiene un producto por uid, scoped al merchant.
func (uc *ProductUseCase) GetByUID(ctx context.Context, merchantID, uid string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByMerchantAndUID(merchantID, uid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre/descripción e invalida el cache del uid.
func (uc *ProductUseCase) Update(ctx context.Context, merchantID, uid string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByMerchantAndUID(merchantID, uid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, merchantID, uid); err != nil {
			log.Warn().Err(err).Str("uid", uid).Msg("invalidar cache de producto")
		}
	}
	return toProductResponse(product), nil
}

// List lista productos por merchant con paginación.
func (uc *ProductUseCase) List(ctx context.Context, merchantID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByMerchant(merchantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
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
