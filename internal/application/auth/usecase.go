package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
	pkgjwt "github.com/muycriollo/catalogo-api/pkg/jwt"
)

// Config credenciales del admin único y parámetros del JWT.
// Si PasswordHash está definido se verifica con bcrypt; si no, se compara
// Password en texto plano (tiempo constante) como hace el despliegue simple.
type Config struct {
	AdminUser    string
	Password     string
	PasswordHash string
	JWTSecret    string
	JWTIssuer    string
	ExpMinutes   int
}

// AuthUseCase login del panel admin con credencial única de configuración.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login valida las credenciales y emite el token de acceso al panel.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.cfg.Password == "" && uc.cfg.PasswordHash == "" {
		// Sin contraseña configurada nadie entra: nunca un default abierto.
		return nil, domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(in.User), []byte(uc.cfg.AdminUser)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if uc.cfg.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	} else if subtle.ConstantTimeCompare([]byte(in.Password), []byte(uc.cfg.Password)) != 1 {
		return nil, domain.ErrUnauthorized
	}

	token, err := pkgjwt.Generate(uc.cfg.JWTSecret, uc.cfg.AdminUser, "admin", uc.cfg.JWTIssuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}
