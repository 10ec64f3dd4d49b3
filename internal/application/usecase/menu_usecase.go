package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/channelry/merchant-api/internal/application/dto"
	"github.com/channelry/merchant-api/internal/domain"
	"github.com/channelry/merchant-api/internal/domain/entity"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// MenuUseCase alta y listado de menús del merchant.
type MenuUseCase struct {
	repo repository.MenuRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Create crea un menú.
func (uc *MenuUseCase) Create(ctx context.Context, merchantID string, in dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	menu := &entity.Menu{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(menu); err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// List lista los menús del merchant.
func (uc *MenuUseCase) List(ctx context.Context, merchantID string) (*dto.MenuListResponse, error) {
	list, err := uc.repo.ListByMerchant(merchantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMenuResponse(m))
	}
	return &dto.MenuListResponse{Items: items}, nil
}

func toMenuResponse(m *entity.Menu) *dto.MenuResponse {
	if m == nil {
		return nil
	}
	return &dto.MenuResponse{
		ID:         m.ID,
		MerchantID: m.MerchantID,
		Name:       m.Name,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
