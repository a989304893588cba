package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/notify"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/pkg/utils"
)

// --- Custom Service Errors for Enquiry ---
var (
	ErrEnquiryValidation = errors.New("enquiry data validation error")
	ErrEnquiryNotFound   = errors.New("enquiry not found")
)

// --- Enquiry DTOs ---

// SubmitEnquiryRequest carries a lead from any public entry surface
// (enquiry modal, inline contact form). Name, phone, event date and city are
// mandatory; service and message are optional.
type SubmitEnquiryRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	EventDate string `json:"event_date" binding:"required"`
	City      string `json:"city" binding:"required"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// SubmitEnquiryResult reports both independent side effects of a submission.
// WhatsAppURL is always set; Persisted is false when the database write
// failed (the failure is logged, never surfaced).
type SubmitEnquiryResult struct {
	Enquiry     *models.Enquiry `json:"enquiry,omitempty"`
	Persisted   bool            `json:"persisted"`
	WhatsAppURL string          `json:"whatsapp_url"`
}

// --- EnquiryService Interface ---
type EnquiryService interface {
	SubmitEnquiry(req SubmitEnquiryRequest) (*SubmitEnquiryResult, error)
	GetEnquiries() ([]models.Enquiry, error)
	DeleteEnquiry(id int64) error
}

// --- enquiryService Implementation ---
type enquiryService struct {
	enquiryRepo repositories.EnquiryRepository
	db          *sql.DB
	whatsapp    *notify.WhatsAppBuilder
}

// NewEnquiryService creates a new instance of EnquiryService.
func NewEnquiryService(repo repositories.EnquiryRepository, db *sql.DB, whatsapp *notify.WhatsAppBuilder) EnquiryService {
	return &enquiryService{
		enquiryRepo: repo,
		db:          db,
		whatsapp:    whatsapp,
	}
}

func (s *enquiryService) validateEnquiry(req SubmitEnquiryRequest) error {
	required := map[string]string{
		"name":       req.Name,
		"phone":      req.Phone,
		"event_date": req.EventDate,
		"city":       req.City,
	}
	for field, value := range required {
		if utils.IsEmpty(value) {
			return fmt.Errorf("%w: %s is required", ErrEnquiryValidation, field)
		}
	}
	return nil
}

// SubmitEnquiry runs the persist-then-notify sequence. Validation happens
// before any side effect. Persistence is best-effort: a failed insert is
// logged and the flow continues, because the WhatsApp handoff is the primary
// success path and must never be blocked on storage.
func (s *enquiryService) SubmitEnquiry(req SubmitEnquiryRequest) (*SubmitEnquiryResult, error) {
	if err := s.validateEnquiry(req); err != nil {
		return nil, err
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = models.DefaultEnquiryNote
	}

	enquiry := &models.Enquiry{
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		EventDate: strings.TrimSpace(req.EventDate),
		City:      strings.TrimSpace(req.City),
		Service:   strings.TrimSpace(req.Service),
		Message:   message,
	}

	persisted := true
	if _, err := s.enquiryRepo.CreateEnquiry(s.db, enquiry); err != nil {
		utils.LogWarn(err, "Lead persistence failed, proceeding with WhatsApp handoff")
		persisted = false
	}

	result := &SubmitEnquiryResult{
		Persisted:   persisted,
		WhatsAppURL: s.whatsapp.EnquiryLink(enquiry),
	}
	if persisted {
		result.Enquiry = enquiry
	}
	return result, nil
}

// GetEnquiries returns all captured leads for the admin panel, newest first.
func (s *enquiryService) GetEnquiries() ([]models.Enquiry, error) {
	enquiries, err := s.enquiryRepo.GetEnquiries()
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return enquiries, nil
}

// DeleteEnquiry marks a lead as processed by removing it.
func (s *enquiryService) DeleteEnquiry(id int64) error {
	err := s.enquiryRepo.DeleteEnquiry(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEnquiryNotFound
		}
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	return nil
}
