package service

import (
	"context"
	"errors"
	"time"

	"licoreria/internal/config"
	"licoreria/internal/dto"
	"licoreria/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
}

// authService valida al único usuario administrador configurado por entorno.
// No hay tabla de usuarios: es un comercio de un solo operador.
type authService struct {
	cfg    *config.Config
	sesion repository.SesionRepository
}

func NewAuthService(cfg *config.Config, sesion repository.SesionRepository) AuthService {
	return &authService{cfg: cfg, sesion: sesion}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.cfg.AdminUser {
		return nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	expira := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	ahora := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"iat": ahora.Unix(),
		"exp": ahora.Add(expira).Unix(),
	})
	firmado, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	_ = s.sesion.Guardar(ctx, true)

	return &dto.LoginResponse{
		AccessToken: firmado,
		TokenType:   "Bearer",
		ExpiresIn:   int(expira.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sesion.Guardar(ctx, false)
}
