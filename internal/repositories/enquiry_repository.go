package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tenthouse_backend/internal/models"
)

// EnquiryRepository defines the interface for lead-related database operations.
type EnquiryRepository interface {
	CreateEnquiry(executor SQLExecutor, enquiry *models.Enquiry) (int64, error)
	GetEnquiries() ([]models.Enquiry, error)
	DeleteEnquiry(executor SQLExecutor, id int64) error
}

type enquiryRepository struct {
	db *sql.DB
}

// NewEnquiryRepository creates a new instance of EnquiryRepository.
func NewEnquiryRepository(db *sql.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

// CreateEnquiry inserts a new lead into the database and returns its id.
func (r *enquiryRepository) CreateEnquiry(executor SQLExecutor, enquiry *models.Enquiry) (int64, error) {
	query := `INSERT INTO enquiries (name, phone, event_date, city, service, message, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	if enquiry.CreatedAt.IsZero() {
		enquiry.CreatedAt = time.Now()
	}

	var id int64
	err := executor.QueryRow(query,
		enquiry.Name, enquiry.Phone, enquiry.EventDate, enquiry.City,
		enquiry.Service, enquiry.Message, enquiry.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: creating enquiry: %v", ErrDatabaseError, err)
	}
	enquiry.ID = id
	return id, nil
}

// GetEnquiries returns all leads, newest first.
func (r *enquiryRepository) GetEnquiries() ([]models.Enquiry, error) {
	query := `SELECT id, name, phone, event_date, city, service, message, created_at
	          FROM enquiries
	          ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing enquiries: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	enquiries := []models.Enquiry{}
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.EventDate, &e.City, &e.Service, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning enquiry: %v", ErrDatabaseError, err)
		}
		enquiries = append(enquiries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating enquiries: %v", ErrDatabaseError, err)
	}
	return enquiries, nil
}

// DeleteEnquiry removes a lead ("mark processed"). Returns ErrNotFound if the
// id does not exist.
func (r *enquiryRepository) DeleteEnquiry(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM enquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting enquiry %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result for enquiry %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
