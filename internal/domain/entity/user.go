package entity

import "time"

// Estados válidos para User.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// User representa un usuario administrador del directorio. No se crea vía la
// API del catálogo: se aprovisiona con el seeder (upsert por email).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca texto plano después de persistir
	Name         string
	Mobile       string
	IsAdmin      bool
	Status       string // ACTIVE, INACTIVE
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
