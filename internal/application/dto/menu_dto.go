package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para crear un ítem de menú. Price acepta
// número o cadena numérica; es obligatorio y debe ser >= 0.
type CreateMenuItemRequest struct {
	ShopID       string           `json:"shop_id" validate:"required"`
	ItemName     string           `json:"item_name" validate:"required,min=1,max=200"`
	Description  string           `json:"description"`
	Price        *decimal.Decimal `json:"price" validate:"required"`
	ImageURL     string           `json:"image_url"`
	CategoryName string           `json:"category_name"`
	IsQuickSnack bool             `json:"is_quick_snack"`
	IsAvailable  *bool            `json:"is_available"` // nil = true por defecto
	Quantity     *FlexInt         `json:"quantity"`
}

// UpdateMenuItemRequest entrada para actualización parcial (campos omitidos se conservan).
type UpdateMenuItemRequest struct {
	ItemName     *string          `json:"item_name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	CategoryName *string          `json:"category_name"`
	IsQuickSnack *bool            `json:"is_quick_snack"`
	IsAvailable  *bool            `json:"is_available"`
	Quantity     *FlexInt         `json:"quantity"`
}

// MenuItemResponse salida de un ítem de menú.
type MenuItemResponse struct {
	ID           string          `json:"id"`
	ShopID       string          `json:"shop_id"`
	ItemName     string          `json:"item_name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	CategoryName string          `json:"category_name"`
	IsQuickSnack bool            `json:"is_quick_snack"`
	IsAvailable  bool            `json:"is_available"`
	Quantity     *int            `json:"quantity"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
