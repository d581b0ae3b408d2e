package memory

import (
	"sort"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo adaptador en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	s *Store
}

// NewCategoryRepository construye el adaptador sobre el almacén compartido.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{s: s}
}

// Create persiste una nueva categoría. ErrDuplicate si el nombre ya existe
// (misma constraint UNIQUE que en la DB).
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *category
	r.s.categories[cp.ID] = &cp
	r.s.nextSeq(cp.ID)
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// GetByName busca por nombre exacto, sensible a mayúsculas.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// Update actualiza una categoría existente. ErrDuplicate si el nuevo nombre
// ya pertenece a otra categoría (misma constraint UNIQUE que en la DB).
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.s.categories {
		if c.Name == category.Name && c.ID != category.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *category
	r.s.categories[cp.ID] = &cp
	return nil
}

// List lista categorías más recientes primero, con el conteo de shops derivado.
func (r *CategoryRepo) List() ([]*entity.CategoryWithCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int64)
	for _, s := range r.s.shops {
		counts[s.CategoryID]++
	}
	list := make([]*entity.CategoryWithCount, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		list = append(list, &entity.CategoryWithCount{Category: *c, ShopCount: counts[c.ID]})
	}
	sort.Slice(list, func(i, j int) bool {
		return r.s.order[list[i].ID] > r.s.order[list[j].ID]
	})
	return list, nil
}

// Delete elimina una categoría. Rechaza con ErrHasDependents si aún tiene shops.
func (r *CategoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, s := range r.s.shops {
		if s.CategoryID == id {
			return domain.ErrHasDependents
		}
	}
	delete(r.s.categories, id)
	delete(r.s.order, id)
	return nil
}

// Count devuelve el total de categorías.
func (r *CategoryRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.categories)), nil
}
