package repository

import "github.com/jhoicas/Directorio-api/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	// GetByShopAndName es la clave del "ensure" idempotente de ítems.
	GetByShopAndName(shopID, itemName string) (*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	// ListByShop devuelve los ítems de un shop ordenados por nombre ascendente.
	ListByShop(shopID string) ([]*entity.MenuItem, error)
	CountByShop(shopID string) (int64, error)
	// DeleteByShop elimina todos los ítems de un shop. Lo invoca el caso de
	// uso de borrado de Shop antes de borrar el shop (cascada en el servicio,
	// idéntica en los adaptadores postgres y memoria).
	DeleteByShop(shopID string) error
	Delete(id string) error
	Count() (int64, error)
}
