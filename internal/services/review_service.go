package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/pkg/utils"
)

// --- Custom Service Errors for Review ---
var (
	ErrReviewValidation = errors.New("review data validation error")
	ErrReviewNotFound   = errors.New("review not found")
)

// --- Review DTOs ---

// SubmitReviewRequest carries a visitor testimonial from the public form.
type SubmitReviewRequest struct {
	Name      string `json:"name" binding:"required"`
	EventType string `json:"event_type" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// --- ReviewService Interface ---
type ReviewService interface {
	SubmitReview(req SubmitReviewRequest) (*models.Review, error)
	GetApprovedReviews() ([]models.Review, error)
	GetAllReviews() ([]models.Review, error)
	ApproveReview(id int64) error
	DeleteReview(id int64) error
}

// --- reviewService Implementation ---
type reviewService struct {
	reviewRepo repositories.ReviewRepository
	db         *sql.DB
}

// NewReviewService creates a new instance of ReviewService.
func NewReviewService(repo repositories.ReviewRepository, db *sql.DB) ReviewService {
	return &reviewService{
		reviewRepo: repo,
		db:         db,
	}
}

func (s *reviewService) validateReview(req SubmitReviewRequest) error {
	if utils.IsEmpty(req.Name) {
		return fmt.Errorf("%w: name is required", ErrReviewValidation)
	}
	if utils.IsEmpty(req.EventType) {
		return fmt.Errorf("%w: event type is required", ErrReviewValidation)
	}
	if utils.IsEmpty(req.Message) {
		return fmt.Errorf("%w: message is required", ErrReviewValidation)
	}
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrReviewValidation, models.MinRating, models.MaxRating)
	}
	return nil
}

// SubmitReview persists a testimonial in pending state. Reviews become
// publicly visible only after an admin approves them; unlike enquiry capture
// there is no fallback channel, so persistence failures propagate.
func (s *reviewService) SubmitReview(req SubmitReviewRequest) (*models.Review, error) {
	if err := s.validateReview(req); err != nil {
		return nil, err
	}

	review := &models.Review{
		Name:       strings.TrimSpace(req.Name),
		EventType:  strings.TrimSpace(req.EventType),
		Rating:     req.Rating,
		Message:    strings.TrimSpace(req.Message),
		IsApproved: false,
	}

	if _, err := s.reviewRepo.CreateReview(s.db, review); err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}
	return review, nil
}

// GetApprovedReviews returns the publicly visible testimonials, newest first.
func (s *reviewService) GetApprovedReviews() ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetReviews(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved reviews: %w", err)
	}
	return reviews, nil
}

// GetAllReviews returns every testimonial for the moderation panel; the
// client splits them into pending/approved tabs.
func (s *reviewService) GetAllReviews() ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetReviews(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ApproveReview marks a testimonial publicly visible. Approving an
// already-approved review is a no-op, not an error.
func (s *reviewService) ApproveReview(id int64) error {
	err := s.reviewRepo.SetApproved(s.db, id, true)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to approve review: %w", err)
	}
	return nil
}

// DeleteReview permanently discards a testimonial.
func (s *reviewService) DeleteReview(id int64) error {
	err := s.reviewRepo.DeleteReview(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
