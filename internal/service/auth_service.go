package service

import (
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/config"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single administrator
type AuthService interface {
	// Login returns a signed session token on success
	Login(username, password string) (string, error)
}

type authService struct {
	adminUser  string
	adminPass  string
	adminHash  string
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg *config.Config, jwtManager *jwt.Manager) AuthService {
	return &authService{
		adminUser:  cfg.Admin.Username,
		adminPass:  cfg.Admin.Password,
		adminHash:  cfg.Admin.PasswordHash,
		jwtManager: jwtManager,
	}
}

// Login compares the credentials against the configured admin
// identity. A bcrypt hash takes precedence when configured; the
// plaintext comparison is kept for parity with legacy deployments.
func (s *authService) Login(username, password string) (string, error) {
	if username != s.adminUser {
		return "", common.ErrInvalidCredentials
	}

	if s.adminHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
			return "", common.ErrInvalidCredentials
		}
	} else if password != s.adminPass {
		return "", common.ErrInvalidCredentials
	}

	return s.jwtManager.GenerateSessionToken(username)
}
