package dto

// LoginRequest credenciales del admin único (definido por configuración).
type LoginRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT de acceso al panel admin.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // "bearer"
}
