// Package memory implementa los puertos de persistencia sobre mapas en
// proceso. Misma semántica que el adaptador postgres (incluido
// ErrHasDependents al borrar una categoría con shops), para que los casos de
// uso se prueben sin una base de datos y para el modo DB_DRIVER=memory.
package memory

import (
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Store contiene los cuatro conjuntos de registros del catálogo. Un solo
// mutex serializa las escrituras concurrentes (último commit gana, como en
// la DB). Los números de secuencia dan un orden de creación estable aunque
// dos registros compartan timestamp.
type Store struct {
	mu  sync.RWMutex
	seq int64

	categories map[string]*entity.Category
	shops      map[string]*entity.Shop
	menuItems  map[string]*entity.MenuItem
	users      map[string]*entity.User

	order map[string]int64 // id -> secuencia de inserción
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]*entity.Category),
		shops:      make(map[string]*entity.Shop),
		menuItems:  make(map[string]*entity.MenuItem),
		users:      make(map[string]*entity.User),
		order:      make(map[string]int64),
	}
}

// nextSeq asigna el siguiente número de inserción. Llamar con mu tomado.
func (s *Store) nextSeq(id string) {
	s.seq++
	s.order[id] = s.seq
}
