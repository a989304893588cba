package models

import "time"

// Rating bounds offered by the public review form.
const (
	MinRating = 3
	MaxRating = 5
)

// Review represents a visitor-submitted testimonial. New reviews start
// unapproved and become publicly visible only after an admin approves them.
// Apart from the approval toggle a review is immutable.
type Review struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name" binding:"required"`
	EventType  string    `json:"event_type" db:"event_type" binding:"required"` // e.g. "Wedding", sometimes with a role qualifier
	Rating     int       `json:"rating" db:"rating" binding:"required"`
	Message    string    `json:"message" db:"message" binding:"required"`
	IsApproved bool      `json:"is_approved" db:"is_approved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
