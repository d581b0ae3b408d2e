package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// MenuUseCase casos de uso CRUD para ítems de menú.
type MenuUseCase struct {
	menuItems repository.MenuItemRepository
	shops     repository.ShopRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(menuItems repository.MenuItemRepository, shops repository.ShopRepository) *MenuUseCase {
	return &MenuUseCase{menuItems: menuItems, shops: shops}
}

// Create crea un ítem. Price es obligatorio y debe ser >= 0: un precio
// ausente o inválido es ErrInvalidInput, nunca se convierte en 0 en silencio.
// ShopID debe resolver a un shop existente (ErrConstraint si no).
func (uc *MenuUseCase) Create(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if strings.TrimSpace(in.ItemName) == "" || strings.TrimSpace(in.ShopID) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price == nil || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	shop, err := uc.shops.GetByID(in.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrConstraint
	}
	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:           uuid.New().String(),
		ShopID:       in.ShopID,
		ItemName:     in.ItemName,
		Description:  in.Description,
		Price:        *in.Price,
		ImageURL:     in.ImageURL,
		CategoryName: in.CategoryName,
		IsQuickSnack: in.IsQuickSnack,
		IsAvailable:  isAvailable,
		Quantity:     in.Quantity.Int(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.menuItems.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Ensure busca por (shop, nombre) y crea el ítem si no existe. Si ya existe
// lo devuelve sin modificar. El lookup+create no es atómico frente a
// seeders concurrentes.
func (uc *MenuUseCase) Ensure(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if strings.TrimSpace(in.ItemName) == "" || strings.TrimSpace(in.ShopID) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.menuItems.GetByShopAndName(in.ShopID, in.ItemName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toMenuItemResponse(existing), nil
	}
	return uc.Create(in)
}

// Update actualización parcial. Un Price presente pero negativo es
// ErrInvalidInput y el valor almacenado no cambia; Price omitido se conserva.
func (uc *MenuUseCase) Update(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.menuItems.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.ItemName != nil {
		if strings.TrimSpace(*in.ItemName) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.ItemName = *in.ItemName
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.CategoryName != nil {
		item.CategoryName = *in.CategoryName
	}
	if in.IsQuickSnack != nil {
		item.IsQuickSnack = *in.IsQuickSnack
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.Quantity != nil {
		item.Quantity = in.Quantity.Int()
	}
	item.UpdatedAt = time.Now()
	if err := uc.menuItems.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete elimina un ítem por ID.
func (uc *MenuUseCase) Delete(id string) error {
	return uc.menuItems.Delete(id)
}

// ListByShop lista los ítems de un shop ordenados por nombre ascendente.
func (uc *MenuUseCase) ListByShop(shopID string) ([]dto.MenuItemResponse, error) {
	list, err := uc.menuItems.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMenuItemResponse(m))
	}
	return items, nil
}

func toMenuItemResponse(m *entity.MenuItem) *dto.MenuItemResponse {
	if m == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:           m.ID,
		ShopID:       m.ShopID,
		ItemName:     m.ItemName,
		Description:  m.Description,
		Price:        m.Price,
		ImageURL:     m.ImageURL,
		CategoryName: m.CategoryName,
		IsQuickSnack: m.IsQuickSnack,
		IsAvailable:  m.IsAvailable,
		Quantity:     m.Quantity,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
