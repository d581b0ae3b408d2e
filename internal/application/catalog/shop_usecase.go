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

// ShopUseCase casos de uso CRUD para shops, incluida la composición de
// detalle (shop + categoría + menú) y la cascada sobre los ítems al borrar.
type ShopUseCase struct {
	shops      repository.ShopRepository
	categories repository.CategoryRepository
	menuItems  repository.MenuItemRepository
}

// NewShopUseCase construye el caso de uso.
func NewShopUseCase(shops repository.ShopRepository, categories repository.CategoryRepository, menuItems repository.MenuItemRepository) *ShopUseCase {
	return &ShopUseCase{shops: shops, categories: categories, menuItems: menuItems}
}

// Create crea un shop. CategoryID debe referenciar una categoría existente
// en el momento de la escritura; si no resuelve devuelve ErrConstraint y no
// se crea ninguna fila.
func (uc *ShopUseCase) Create(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CategoryID) == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrConstraint
	}
	now := time.Now()
	shop := newShopFromRequest(in)
	shop.ID = uuid.New().String()
	shop.CreatedAt = now
	shop.UpdatedAt = now
	if err := uc.shops.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Ensure busca por (categoría, nombre) y crea el shop si no existe. Si ya
// existe lo devuelve sin modificar. Mismo aviso que CategoryUseCase.Ensure:
// el lookup+create no es atómico frente a seeders concurrentes.
func (uc *ShopUseCase) Ensure(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CategoryID) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.shops.GetByCategoryAndName(in.CategoryID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toShopResponse(existing), nil
	}
	return uc.Create(in)
}

// Update actualización parcial. Si se re-apunta CategoryID se verifica que
// la nueva categoría exista (ErrConstraint si no).
func (uc *ShopUseCase) Update(id string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.shops.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrConstraint
		}
		shop.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		shop.Name = *in.Name
	}
	if in.LogoURL != nil {
		shop.LogoURL = *in.LogoURL
	}
	if in.Description != nil {
		shop.Description = *in.Description
	}
	if in.ReviewDescription != nil {
		shop.ReviewDescription = *in.ReviewDescription
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.PhoneNumber != nil {
		shop.PhoneNumber = *in.PhoneNumber
	}
	if in.Area != nil {
		shop.Area = *in.Area
	}
	if in.City != nil {
		shop.City = *in.City
	}
	if in.Latitude != nil {
		shop.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		shop.Longitude = in.Longitude
	}
	if in.WebsiteURL != nil {
		shop.WebsiteURL = *in.WebsiteURL
	}
	if in.ChatLink != nil {
		shop.ChatLink = *in.ChatLink
	}
	if in.OpenHours != nil {
		shop.OpenHours = *in.OpenHours
	}
	shop.UpdatedAt = time.Now()
	if err := uc.shops.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Delete elimina un shop y cascada sobre sus ítems de menú: un ítem no tiene
// sentido sin su shop. Primero los ítems, después el shop.
func (uc *ShopUseCase) Delete(id string) error {
	shop, err := uc.shops.GetByID(id)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrNotFound
	}
	if err := uc.menuItems.DeleteByShop(id); err != nil {
		return err
	}
	return uc.shops.Delete(id)
}

// List lista shops más recientes primero, opcionalmente filtrados por
// categoría y con el resumen de su categoría padre.
func (uc *ShopUseCase) List(categoryID string, includeCategory bool) ([]dto.ShopListItem, error) {
	list, err := uc.shops.List(categoryID)
	if err != nil {
		return nil, err
	}
	// Resumen de categorías resuelto una sola vez por ID
	cache := make(map[string]*dto.CategoryResponse)
	items := make([]dto.ShopListItem, 0, len(list))
	for _, s := range list {
		item := dto.ShopListItem{ShopResponse: *toShopResponse(s)}
		if includeCategory {
			summary, ok := cache[s.CategoryID]
			if !ok {
				category, err := uc.categories.GetByID(s.CategoryID)
				if err != nil {
					return nil, err
				}
				summary = toCategoryResponse(category)
				cache[s.CategoryID] = summary
			}
			item.Category = summary
		}
		items = append(items, item)
	}
	return items, nil
}

// GetDetail devuelve el shop con su categoría padre y su menú completo
// ordenado por nombre. ErrNotFound si el shop no existe.
func (uc *ShopUseCase) GetDetail(id string) (*dto.ShopDetailResponse, error) {
	shop, err := uc.shops.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(shop.CategoryID)
	if err != nil {
		return nil, err
	}
	menus, err := uc.menuItems.ListByShop(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.ShopDetailResponse{
		ShopResponse: *toShopResponse(shop),
		Category:     toCategoryResponse(category),
		Menus:        make([]dto.MenuItemResponse, 0, len(menus)),
	}
	for _, m := range menus {
		detail.Menus = append(detail.Menus, *toMenuItemResponse(m))
	}
	return detail, nil
}

func newShopFromRequest(in dto.CreateShopRequest) *entity.Shop {
	return &entity.Shop{
		CategoryID:        in.CategoryID,
		Name:              in.Name,
		LogoURL:           in.LogoURL,
		Description:       in.Description,
		ReviewDescription: in.ReviewDescription,
		Address:           in.Address,
		PhoneNumber:       in.PhoneNumber,
		Area:              in.Area,
		City:              in.City,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		WebsiteURL:        in.WebsiteURL,
		ChatLink:          in.ChatLink,
		OpenHours:         in.OpenHours,
	}
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:                s.ID,
		CategoryID:        s.CategoryID,
		Name:              s.Name,
		LogoURL:           s.LogoURL,
		Description:       s.Description,
		ReviewDescription: s.ReviewDescription,
		Address:           s.Address,
		PhoneNumber:       s.PhoneNumber,
		Area:              s.Area,
		City:              s.City,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		WebsiteURL:        s.WebsiteURL,
		ChatLink:          s.ChatLink,
		OpenHours:         s.OpenHours,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
