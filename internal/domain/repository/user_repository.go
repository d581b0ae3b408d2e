package repository

import "github.com/jhoicas/Directorio-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// FindAdminByEmail busca un usuario por email con IsAdmin = true.
	// Devuelve (nil, nil) si no existe o no es admin.
	FindAdminByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
