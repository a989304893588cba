package models

import "time"

// Portfolio categories offered by the admin upload form.
const (
	CategoryWeddings  = "Weddings"
	CategoryCorporate = "Corporate"
	CategoryParties   = "Parties"
)

// PortfolioCategories lists the valid category values.
var PortfolioCategories = []string{CategoryWeddings, CategoryCorporate, CategoryParties}

// IsValidPortfolioCategory reports whether category is one of the enumerated set.
func IsValidPortfolioCategory(category string) bool {
	for _, c := range PortfolioCategories {
		if c == category {
			return true
		}
	}
	return false
}

// PortfolioItem represents a showcase image in the public gallery.
// The image itself lives in object storage; ImageURL points at it.
// Visibility is soft-deleted via IsActive; a hard delete also reclaims
// the stored object (best-effort).
type PortfolioItem struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title" binding:"required"`
	Category    string    `json:"category" db:"category" binding:"required"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
