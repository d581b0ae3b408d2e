package repository

import "github.com/jhoicas/Directorio-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop (DIP).
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	// GetByCategoryAndName es la clave del "ensure" idempotente. Se decidió
	// acotar por (categoryID, name): el mismo nombre en otra categoría es
	// otro shop, no un duplicado.
	GetByCategoryAndName(categoryID, name string) (*entity.Shop, error)
	Update(shop *entity.Shop) error
	// List devuelve shops más recientes primero. categoryID vacío lista todos.
	List(categoryID string) ([]*entity.Shop, error)
	CountByCategory(categoryID string) (int64, error)
	Delete(id string) error
	Count() (int64, error)
}
