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

// CategoryUseCase casos de uso CRUD para categorías del directorio.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	shops      repository.ShopRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, shops repository.ShopRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, shops: shops}
}

// Create crea una categoría. Name es obligatorio.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categories.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Ensure busca por nombre exacto y crea la categoría si no existe. Si ya
// existe la devuelve sin modificar (el seeding nunca pisa datos existentes).
// Nota: el lookup y el create no son atómicos; con dos seeders concurrentes
// el perdedor recibe ErrDuplicate del UNIQUE sobre el nombre.
func (uc *CategoryUseCase) Ensure(name, imageURL string, isActive bool) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toCategoryResponse(existing), nil
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		ImageURL:  imageURL,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualización parcial: los campos nil conservan su valor.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		// Renombrar también respeta la unicidad del nombre: un rename hacia
		// un nombre ya ocupado rompería la clave del ensure/GetByName.
		if *in.Name != category.Name {
			existing, err := uc.categories.GetByName(*in.Name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != category.ID {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = *in.Name
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. No cascada: si aún tiene shops devuelve
// ErrHasDependents y no toca ninguna fila (los shops valen por sí mismos;
// el caller debe reasignarlos o borrarlos primero).
func (uc *CategoryUseCase) Delete(id string) error {
	n, err := uc.shops.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return uc.categories.Delete(id)
}

// List lista categorías más recientes primero, con el conteo de shops.
func (uc *CategoryUseCase) List() ([]dto.CategoryListItem, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryListItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryListItem{
			CategoryResponse: *toCategoryResponse(&c.Category),
			ShopCount:        c.ShopCount,
		})
	}
	return items, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ImageURL:  c.ImageURL,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
