package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShopRequest entrada para crear un shop. Latitude/Longitude aceptan
// número o cadena numérica en JSON (decimal.Decimal parsea ambos).
type CreateShopRequest struct {
	CategoryID        string           `json:"category_id" validate:"required"`
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	LogoURL           string           `json:"logo_url"`
	Description       string           `json:"description"`
	ReviewDescription string           `json:"review_description"`
	Address           string           `json:"address"`
	PhoneNumber       string           `json:"phone_number"`
	Area              string           `json:"area"`
	City              string           `json:"city"`
	Latitude          *decimal.Decimal `json:"latitude"`
	Longitude         *decimal.Decimal `json:"longitude"`
	WebsiteURL        string           `json:"website_url"`
	ChatLink          string           `json:"chat_link"`
	OpenHours         string           `json:"open_hours"`
}

// UpdateShopRequest entrada para actualización parcial (campos omitidos se conservan).
type UpdateShopRequest struct {
	CategoryID        *string          `json:"category_id"`
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	LogoURL           *string          `json:"logo_url"`
	Description       *string          `json:"description"`
	ReviewDescription *string          `json:"review_description"`
	Address           *string          `json:"address"`
	PhoneNumber       *string          `json:"phone_number"`
	Area              *string          `json:"area"`
	City              *string          `json:"city"`
	Latitude          *decimal.Decimal `json:"latitude"`
	Longitude         *decimal.Decimal `json:"longitude"`
	WebsiteURL        *string          `json:"website_url"`
	ChatLink          *string          `json:"chat_link"`
	OpenHours         *string          `json:"open_hours"`
}

// ShopResponse salida de un shop.
type ShopResponse struct {
	ID                string           `json:"id"`
	CategoryID        string           `json:"category_id"`
	Name              string           `json:"name"`
	LogoURL           string           `json:"logo_url"`
	Description       string           `json:"description"`
	ReviewDescription string           `json:"review_description"`
	Address           string           `json:"address"`
	PhoneNumber       string           `json:"phone_number"`
	Area              string           `json:"area"`
	City              string           `json:"city"`
	Latitude          *decimal.Decimal `json:"latitude"`
	Longitude         *decimal.Decimal `json:"longitude"`
	WebsiteURL        string           `json:"website_url"`
	ChatLink          string           `json:"chat_link"`
	OpenHours         string           `json:"open_hours"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ShopListItem shop con el resumen de su categoría (vista de listado).
type ShopListItem struct {
	ShopResponse
	Category *CategoryResponse `json:"category,omitempty"`
}

// ShopDetailResponse shop con su categoría y su menú completo ordenado.
type ShopDetailResponse struct {
	ShopResponse
	Category *CategoryResponse  `json:"category"`
	Menus    []MenuItemResponse `json:"menus"`
}
