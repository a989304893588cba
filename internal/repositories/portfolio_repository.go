package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tenthouse_backend/internal/models"
)

// PortfolioRepository defines the interface for showcase-item database operations.
type PortfolioRepository interface {
	CreateItem(executor SQLExecutor, item *models.PortfolioItem) (int64, error)
	GetItems(includeInactive bool) ([]models.PortfolioItem, error)
	GetItemByID(id int64) (*models.PortfolioItem, error)
	UpdateIsActive(executor SQLExecutor, id int64, isActive bool) error
	DeleteItem(executor SQLExecutor, id int64) error
}

type portfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new instance of PortfolioRepository.
func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// CreateItem inserts a new showcase item and returns its id.
func (r *portfolioRepository) CreateItem(executor SQLExecutor, item *models.PortfolioItem) (int64, error) {
	query := `INSERT INTO portfolio_items (title, category, description, image_url, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	var id int64
	err := executor.QueryRow(query,
		item.Title, item.Category, item.Description, item.ImageURL,
		item.IsActive, item.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: creating portfolio item: %v", ErrDatabaseError, err)
	}
	item.ID = id
	return id, nil
}

// GetItems returns showcase items, newest first. Public callers pass
// includeInactive=false; the admin panel passes true.
func (r *portfolioRepository) GetItems(includeInactive bool) ([]models.PortfolioItem, error) {
	query := `SELECT id, title, category, description, image_url, is_active, created_at
	          FROM portfolio_items`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing portfolio items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.PortfolioItem{}
	for rows.Next() {
		var item models.PortfolioItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Category, &item.Description, &item.ImageURL, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning portfolio item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating portfolio items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

// GetItemByID retrieves a single showcase item.
func (r *portfolioRepository) GetItemByID(id int64) (*models.PortfolioItem, error) {
	query := `SELECT id, title, category, description, image_url, is_active, created_at
	          FROM portfolio_items WHERE id = $1`

	var item models.PortfolioItem
	err := r.db.QueryRow(query, id).Scan(&item.ID, &item.Title, &item.Category, &item.Description, &item.ImageURL, &item.IsActive, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetching portfolio item %d: %v", ErrDatabaseError, id, err)
	}
	return &item, nil
}

// UpdateIsActive toggles an item's public visibility.
func (r *portfolioRepository) UpdateIsActive(executor SQLExecutor, id int64, isActive bool) error {
	result, err := executor.Exec(`UPDATE portfolio_items SET is_active = $1 WHERE id = $2`, isActive, id)
	if err != nil {
		return fmt.Errorf("%w: updating portfolio item %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking update result for portfolio item %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem permanently removes a showcase record. Reclaiming the stored
// image object is the service layer's responsibility.
func (r *portfolioRepository) DeleteItem(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting portfolio item %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result for portfolio item %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
