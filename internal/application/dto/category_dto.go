package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ImageURL string `json:"image_url"`
	IsActive *bool  `json:"is_active"` // nil = true por defecto
}

// UpdateCategoryRequest entrada para actualización parcial (campos omitidos se conservan).
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	ImageURL *string `json:"image_url"`
	IsActive *bool   `json:"is_active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListItem categoría con su conteo derivado de shops (vista de listado).
type CategoryListItem struct {
	CategoryResponse
	ShopCount int64 `json:"shop_count"`
}
