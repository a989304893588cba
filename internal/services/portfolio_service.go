package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/internal/storage"
	"tenthouse_backend/pkg/utils"
)

// --- Custom Service Errors for Portfolio ---
var (
	ErrPortfolioValidation = errors.New("portfolio data validation error")
	ErrPortfolioNotFound   = errors.New("portfolio item not found")
	ErrImageRequired       = errors.New("an image must be uploaded before creating a portfolio item")
)

// --- Portfolio DTOs ---

// CreatePortfolioItemRequest creates a showcase record. ImageURL must come
// from a prior successful upload.
type CreatePortfolioItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// UpdatePortfolioItemRequest toggles an item's visibility. This is the only
// mutation a showcase record supports.
type UpdatePortfolioItemRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// --- PortfolioService Interface ---
type PortfolioService interface {
	GetItems(includeInactive bool) ([]models.PortfolioItem, error)
	UploadImage(fileName string, r io.Reader) (string, error)
	CreateItem(req CreatePortfolioItemRequest) (*models.PortfolioItem, error)
	SetItemActive(id int64, isActive bool) error
	DeleteItem(id int64) error
}

// --- portfolioService Implementation ---
type portfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	db            *sql.DB
	store         storage.ObjectStorage
}

// NewPortfolioService creates a new instance of PortfolioService.
func NewPortfolioService(repo repositories.PortfolioRepository, db *sql.DB, store storage.ObjectStorage) PortfolioService {
	return &portfolioService{
		portfolioRepo: repo,
		db:            db,
		store:         store,
	}
}

// GetItems returns showcase items; public callers get active ones only.
func (s *portfolioService) GetItems(includeInactive bool) ([]models.PortfolioItem, error) {
	items, err := s.portfolioRepo.GetItems(includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

// UploadImage stores an image under a collision-resistant key and returns
// its public URL. Storage errors (including the distinguished bucket-missing
// case) propagate unwrapped in meaning so handlers can render the right
// diagnostic.
func (s *portfolioService) UploadImage(fileName string, r io.Reader) (string, error) {
	key := storage.MakeObjectKey(fileName)
	url, err := s.store.Upload(key, r)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return url, nil
}

// CreateItem validates and persists a showcase record. New items are active
// immediately.
func (s *portfolioService) CreateItem(req CreatePortfolioItemRequest) (*models.PortfolioItem, error) {
	if utils.IsEmpty(req.Title) {
		return nil, fmt.Errorf("%w: title is required", ErrPortfolioValidation)
	}
	if !models.IsValidPortfolioCategory(req.Category) {
		return nil, fmt.Errorf("%w: category must be one of %s", ErrPortfolioValidation, strings.Join(models.PortfolioCategories, ", "))
	}
	if utils.IsEmpty(req.ImageURL) {
		return nil, ErrImageRequired
	}

	item := &models.PortfolioItem{
		Title:       strings.TrimSpace(req.Title),
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if _, err := s.portfolioRepo.CreateItem(s.db, item); err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return item, nil
}

// SetItemActive toggles an item's public visibility.
func (s *portfolioService) SetItemActive(id int64, isActive bool) error {
	err := s.portfolioRepo.UpdateIsActive(s.db, id, isActive)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPortfolioNotFound
		}
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}
	return nil
}

// DeleteItem reclaims the stored image (best-effort: a missing or
// inaccessible object is logged, never blocking) and then deletes the
// record. Record deletion failure propagates to the caller.
func (s *portfolioService) DeleteItem(id int64) error {
	item, err := s.portfolioRepo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPortfolioNotFound
		}
		return fmt.Errorf("failed to fetch portfolio item: %w", err)
	}

	if item.ImageURL != "" {
		if key, ok := s.store.KeyFromURL(item.ImageURL); ok {
			if err := s.store.Remove(key); err != nil {
				utils.LogWarn(err, "Storage object already missing or inaccessible during portfolio delete")
			}
		}
	}

	if err := s.portfolioRepo.DeleteItem(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPortfolioNotFound
		}
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	return nil
}
