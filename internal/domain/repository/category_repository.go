package repository

import "github.com/jhoicas/Directorio-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca por nombre exacto (sensible a mayúsculas). Es la clave
	// del "ensure" idempotente del seeding.
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List devuelve las categorías más recientes primero, cada una con el
	// conteo derivado de shops asociados.
	List() ([]*entity.CategoryWithCount, error)
	Delete(id string) error
	Count() (int64, error)
}
