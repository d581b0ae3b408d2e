package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop representa un local del directorio. Pertenece siempre a una Category
// (CategoryID es FK obligatoria, verificada al escribir).
type Shop struct {
	ID                string
	CategoryID        string
	Name              string
	LogoURL           string
	Description       string
	ReviewDescription string
	Address           string
	PhoneNumber       string
	Area              string
	City              string
	Latitude          *decimal.Decimal // nil si no está geolocalizado
	Longitude         *decimal.Decimal
	WebsiteURL        string
	ChatLink          string
	OpenHours         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
