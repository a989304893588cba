package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAnAdmin         = errors.New("account is not an authorized admin")
	ErrAdminNotFound      = errors.New("admin account not found")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Admin       *models.AdminUser `json:"admin"`
	AccessToken string            `json:"access_token"`
}

// --- AuthService Interface ---

// AuthService authenticates admin accounts and backs the route guard's
// allow-list check. Every failure path denies; the guard never fails open.
type AuthService interface {
	LoginAdmin(req LoginRequest) (*AuthResponse, error)
	GetAdminProfile(adminID int64) (*models.AdminUser, error)
	VerifyAdmin(adminID int64) error
}

// --- authService Implementation ---
type authService struct {
	authRepo repositories.AuthRepository
	db       *sql.DB
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, db *sql.DB) AuthService {
	return &authService{
		authRepo: authRepo,
		db:       db,
	}
}

// LoginAdmin verifies credentials and the admin allow-list flag, then issues
// an access token. A valid password on a non-admin or inactive account is
// still rejected.
func (s *authService) LoginAdmin(req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, storedHashedPassword, err := s.authRepo.FindAdminByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !admin.IsActive || !admin.IsAdmin {
		return nil, ErrNotAnAdmin
	}

	accessToken, err := utils.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	admin.PasswordHash = ""
	return &AuthResponse{
		Admin:       admin,
		AccessToken: accessToken,
	}, nil
}

// GetAdminProfile retrieves an admin account by id.
func (s *authService) GetAdminProfile(adminID int64) (*models.AdminUser, error) {
	admin, err := s.authRepo.FindAdminByID(adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to retrieve admin profile: %w", err)
	}
	return admin, nil
}

// VerifyAdmin is the allow-list check the route guard runs on every guarded
// request. Any lookup failure, a missing account, an inactive account, or a
// cleared admin flag all deny.
func (s *authService) VerifyAdmin(adminID int64) error {
	admin, err := s.authRepo.FindAdminByID(adminID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAnAdmin, err)
	}
	if !admin.IsActive || !admin.IsAdmin {
		return ErrNotAnAdmin
	}
	return nil
}
