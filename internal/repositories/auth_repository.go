package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tenthouse_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for admin-account database operations.
type AuthRepository interface {
	CreateAdmin(executor SQLExecutor, admin *models.AdminUser, hashedPassword string) (int64, error)
	FindAdminByEmail(email string) (*models.AdminUser, string, error) // Returns AdminUser, HashedPassword, Error
	FindAdminByID(id int64) (*models.AdminUser, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateAdmin inserts a new admin account. IsActive defaults to true;
// IsAdmin comes from the model so an operator can stage accounts that are
// not yet on the allow-list.
func (r *authRepository) CreateAdmin(executor SQLExecutor, admin *models.AdminUser, hashedPassword string) (int64, error) {
	query := `INSERT INTO admin_users (email, password_hash, full_name, is_admin, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	currentTime := time.Now()

	var id int64
	err := executor.QueryRow(query,
		admin.Email,
		hashedPassword,
		admin.FullName, // Can be nil
		admin.IsAdmin,
		true,
		currentTime,
		currentTime,
	).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating admin user: %v", ErrDatabaseError, err)
	}
	admin.ID = id
	return id, nil
}

// FindAdminByEmail retrieves an admin account by email.
// It returns the account, its hashed password, and an error if any.
func (r *authRepository) FindAdminByEmail(email string) (*models.AdminUser, string, error) {
	query := `SELECT id, email, password_hash, full_name, is_admin, is_active, created_at, updated_at
	          FROM admin_users WHERE email = $1`

	admin := &models.AdminUser{}
	var hashedPassword string
	err := r.db.QueryRow(query, email).Scan(
		&admin.ID, &admin.Email, &hashedPassword, &admin.FullName,
		&admin.IsAdmin, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding admin by email: %v", ErrDatabaseError, err)
	}
	return admin, hashedPassword, nil
}

// FindAdminByID retrieves an admin account by id. The password hash is not
// loaded; this is the lookup the route guard uses for its allow-list check.
func (r *authRepository) FindAdminByID(id int64) (*models.AdminUser, error) {
	query := `SELECT id, email, full_name, is_admin, is_active, created_at, updated_at
	          FROM admin_users WHERE id = $1`

	admin := &models.AdminUser{}
	err := r.db.QueryRow(query, id).Scan(
		&admin.ID, &admin.Email, &admin.FullName,
		&admin.IsAdmin, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding admin %d: %v", ErrDatabaseError, id, err)
	}
	return admin, nil
}
