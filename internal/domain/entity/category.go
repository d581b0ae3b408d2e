package entity

import "time"

// Category representa una categoría principal del directorio (agrupa shops).
// Name es único dentro del catálogo (match exacto, sensible a mayúsculas).
type Category struct {
	ID        string
	Name      string
	ImageURL  string // vacío si no tiene imagen
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryWithCount es la vista de listado: la categoría junto con el número
// de shops asociados. El conteo se deriva en la consulta, nunca se almacena.
type CategoryWithCount struct {
	Category
	ShopCount int64
}
