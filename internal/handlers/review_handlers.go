package handlers

import (
	"errors"
	"net/http"

	"tenthouse_backend/internal/services"
	"tenthouse_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler holds the review service.
type ReviewHandler struct {
	reviewService services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(rs services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: rs}
}

// SubmitReview handles a public testimonial submission. Unlike enquiries,
// persistence failures are surfaced: there is no fallback channel.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	review, err := h.reviewService.SubmitReview(req)
	if err != nil {
		if errors.Is(err, services.ErrReviewValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.LogError(err, "SubmitReview: Error from reviewService.SubmitReview")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Review submission failed. Please try again.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetApprovedReviews handles the public testimonial listing.
func (h *ReviewHandler) GetApprovedReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetApprovedReviews()
	if err != nil {
		utils.LogError(err, "GetApprovedReviews: Error from reviewService.GetApprovedReviews")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reviews.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetAllReviews handles fetching every testimonial for the moderation panel.
func (h *ReviewHandler) GetAllReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetAllReviews()
	if err != nil {
		utils.LogError(err, "GetAllReviews: Error from reviewService.GetAllReviews")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reviews.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ApproveReview handles marking a testimonial publicly visible. Idempotent.
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid review ID.", err.Error()))
		return
	}

	if err := h.reviewService.ApproveReview(id); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Review not found.", err.Error()))
		} else {
			utils.LogError(err, "ApproveReview: Error from reviewService.ApproveReview")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to approve review.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review approved"})
}

// DeleteReview handles permanently discarding a testimonial.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid review ID.", err.Error()))
		return
	}

	if err := h.reviewService.DeleteReview(id); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Review not found.", err.Error()))
		} else {
			utils.LogError(err, "DeleteReview: Error from reviewService.DeleteReview")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete review.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
