package memory

import (
	"sort"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo adaptador en memoria del puerto MenuItemRepository.
type MenuItemRepo struct {
	s *Store
}

// NewMenuItemRepository construye el adaptador sobre el almacén compartido.
func NewMenuItemRepository(s *Store) *MenuItemRepo {
	return &MenuItemRepo{s: s}
}

// Create persiste un nuevo ítem. ErrConstraint si el shop no existe.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[item.ShopID]; !ok {
		return domain.ErrConstraint
	}
	cp := *item
	r.s.menuItems[cp.ID] = &cp
	r.s.nextSeq(cp.ID)
	return nil
}

// GetByID obtiene un ítem por ID. (nil, nil) si no existe.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.menuItems[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// GetByShopAndName busca por (shop, nombre exacto).
func (r *MenuItemRepo) GetByShopAndName(shopID, itemName string) (*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.menuItems {
		if m.ShopID == shopID && m.ItemName == itemName {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// Update actualiza un ítem existente.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.menuItems[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.s.menuItems[cp.ID] = &cp
	return nil
}

// ListByShop lista los ítems de un shop ordenados por nombre ascendente.
func (r *MenuItemRepo) ListByShop(shopID string) ([]*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.MenuItem
	for _, m := range r.s.menuItems {
		if m.ShopID == shopID {
			cp := *m
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ItemName < list[j].ItemName
	})
	return list, nil
}

// CountByShop cuenta los ítems de un shop.
func (r *MenuItemRepo) CountByShop(shopID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, m := range r.s.menuItems {
		if m.ShopID == shopID {
			n++
		}
	}
	return n, nil
}

// DeleteByShop elimina todos los ítems de un shop.
func (r *MenuItemRepo) DeleteByShop(shopID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.menuItems {
		if m.ShopID == shopID {
			delete(r.s.menuItems, id)
			delete(r.s.order, id)
		}
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *MenuItemRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.menuItems[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.menuItems, id)
	delete(r.s.order, id)
	return nil
}

// Count devuelve el total de ítems.
func (r *MenuItemRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.menuItems)), nil
}
