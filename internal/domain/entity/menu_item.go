package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un ítem del menú de un Shop. (ShopID, ItemName) es la
// clave de deduplicación del seeding idempotente; no es constraint duro en DB.
// CategoryName es una etiqueta libre, independiente de la entidad Category.
type MenuItem struct {
	ID           string
	ShopID       string
	ItemName     string
	Description  string
	Price        decimal.Decimal // siempre >= 0
	ImageURL     string
	CategoryName string
	IsQuickSnack bool
	IsAvailable  bool // por defecto true
	Quantity     *int // nil si no aplica
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
