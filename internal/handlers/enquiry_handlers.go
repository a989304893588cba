package handlers

import (
	"errors"
	"net/http"

	"tenthouse_backend/internal/services"
	"tenthouse_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EnquiryHandler holds the enquiry service.
type EnquiryHandler struct {
	enquiryService services.EnquiryService
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(es services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: es}
}

// SubmitEnquiry handles a public lead submission. Validation failures are the
// only error surface: persistence failures are internal to the service and the
// response always carries the WhatsApp deep link.
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req services.SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	result, err := h.enquiryService.SubmitEnquiry(req)
	if err != nil {
		if errors.Is(err, services.ErrEnquiryValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.LogError(err, "SubmitEnquiry: Error from enquiryService.SubmitEnquiry")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit enquiry.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetEnquiries handles fetching all leads for the admin panel.
func (h *EnquiryHandler) GetEnquiries(c *gin.Context) {
	enquiries, err := h.enquiryService.GetEnquiries()
	if err != nil {
		utils.LogError(err, "GetEnquiries: Error from enquiryService.GetEnquiries")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch enquiries.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, enquiries)
}

// DeleteEnquiry handles marking a lead as processed.
func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid enquiry ID.", err.Error()))
		return
	}

	if err := h.enquiryService.DeleteEnquiry(id); err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Enquiry not found.", err.Error()))
		} else {
			utils.LogError(err, "DeleteEnquiry: Error from enquiryService.DeleteEnquiry")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete enquiry.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enquiry deleted"})
}
