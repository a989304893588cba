package models

import "time"

// DefaultEnquiryNote is substituted when a lead leaves the message blank.
const DefaultEnquiryNote = "No additional notes."

// Enquiry represents a prospective client's lead captured from the public site.
// Enquiries are write-once: created by a form submission, never updated, and
// deleted by an admin once the lead has been processed.
type Enquiry struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Phone     string    `json:"phone" db:"phone" binding:"required"`
	EventDate string    `json:"event_date" db:"event_date" binding:"required"` // Calendar date as text, e.g. 2025-12-01
	City      string    `json:"city" db:"city" binding:"required"`
	Service   string    `json:"service" db:"service"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
