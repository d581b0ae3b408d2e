package memory

import (
	"sort"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo adaptador en memoria del puerto ShopRepository.
type ShopRepo struct {
	s *Store
}

// NewShopRepository construye el adaptador sobre el almacén compartido.
func NewShopRepository(s *Store) *ShopRepo {
	return &ShopRepo{s: s}
}

// Create persiste un nuevo shop. ErrConstraint si la categoría no existe.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[shop.CategoryID]; !ok {
		return domain.ErrConstraint
	}
	cp := *shop
	r.s.shops[cp.ID] = &cp
	r.s.nextSeq(cp.ID)
	return nil
}

// GetByID obtiene un shop por ID. (nil, nil) si no existe.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	s, ok := r.s.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// GetByCategoryAndName busca por (categoría, nombre exacto).
func (r *ShopRepo) GetByCategoryAndName(categoryID, name string) (*entity.Shop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, s := range r.s.shops {
		if s.CategoryID == categoryID && s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// Update actualiza un shop existente. ErrConstraint si la nueva categoría no existe.
func (r *ShopRepo) Update(shop *entity.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[shop.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.categories[shop.CategoryID]; !ok {
		return domain.ErrConstraint
	}
	cp := *shop
	r.s.shops[cp.ID] = &cp
	return nil
}

// List lista shops más recientes primero. categoryID vacío lista todos.
func (r *ShopRepo) List(categoryID string) ([]*entity.Shop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Shop
	for _, s := range r.s.shops {
		if categoryID != "" && s.CategoryID != categoryID {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		return r.s.order[list[i].ID] > r.s.order[list[j].ID]
	})
	return list, nil
}

// CountByCategory cuenta los shops que referencian una categoría.
func (r *ShopRepo) CountByCategory(categoryID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, s := range r.s.shops {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// Delete elimina un shop por ID. Rechaza con ErrHasDependents si aún quedan
// ítems de menú del shop: la cascada la ejecuta el caso de uso (DeleteByShop
// primero), igual que contra la FK de la DB.
func (r *ShopRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[id]; !ok {
		return domain.ErrNotFound
	}
	for _, m := range r.s.menuItems {
		if m.ShopID == id {
			return domain.ErrHasDependents
		}
	}
	delete(r.s.shops, id)
	delete(r.s.order, id)
	return nil
}

// Count devuelve el total de shops.
func (r *ShopRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.shops)), nil
}
