package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tenthouse_backend/internal/models"
)

// ReviewRepository defines the interface for testimonial-related database operations.
type ReviewRepository interface {
	CreateReview(executor SQLExecutor, review *models.Review) (int64, error)
	GetReviews(approvedOnly bool) ([]models.Review, error)
	GetReviewByID(id int64) (*models.Review, error)
	SetApproved(executor SQLExecutor, id int64, approved bool) error
	DeleteReview(executor SQLExecutor, id int64) error
}

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new instance of ReviewRepository.
func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview inserts a new testimonial and returns its id. The caller
// decides the initial IsApproved value (moderation policy lives in the
// service layer).
func (r *reviewRepository) CreateReview(executor SQLExecutor, review *models.Review) (int64, error) {
	query := `INSERT INTO reviews (name, event_type, rating, message, is_approved, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	var id int64
	err := executor.QueryRow(query,
		review.Name, review.EventType, review.Rating, review.Message,
		review.IsApproved, review.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: creating review: %v", ErrDatabaseError, err)
	}
	review.ID = id
	return id, nil
}

// GetReviews returns testimonials, newest first. With approvedOnly it returns
// only publicly visible ones; otherwise the full set for moderation.
func (r *reviewRepository) GetReviews(approvedOnly bool) ([]models.Review, error) {
	query := `SELECT id, name, event_type, rating, message, is_approved, created_at
	          FROM reviews`
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing reviews: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.EventType, &rv.Rating, &rv.Message, &rv.IsApproved, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning review: %v", ErrDatabaseError, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating reviews: %v", ErrDatabaseError, err)
	}
	return reviews, nil
}

// GetReviewByID retrieves a single testimonial.
func (r *reviewRepository) GetReviewByID(id int64) (*models.Review, error) {
	query := `SELECT id, name, event_type, rating, message, is_approved, created_at
	          FROM reviews WHERE id = $1`

	var rv models.Review
	err := r.db.QueryRow(query, id).Scan(&rv.ID, &rv.Name, &rv.EventType, &rv.Rating, &rv.Message, &rv.IsApproved, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetching review %d: %v", ErrDatabaseError, id, err)
	}
	return &rv, nil
}

// SetApproved toggles the moderation flag. Setting the same value again is
// harmless, which makes approval idempotent at the persistence boundary.
func (r *reviewRepository) SetApproved(executor SQLExecutor, id int64, approved bool) error {
	result, err := executor.Exec(`UPDATE reviews SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("%w: updating review %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking update result for review %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReview permanently removes a testimonial.
func (r *reviewRepository) DeleteReview(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting review %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result for review %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
