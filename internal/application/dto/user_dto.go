package dto

// LoginRequest credenciales de login de administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary resumen del usuario autenticado (nunca incluye el hash).
type UserSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginResponse token firmado + resumen del usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
