package handlers

import (
	"errors"
	"net/http"

	"tenthouse_backend/internal/services"
	"tenthouse_backend/internal/storage"
	"tenthouse_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxImageUploadSize caps portfolio uploads at 10 MiB.
const maxImageUploadSize = 10 << 20

// PortfolioHandler holds the portfolio service.
type PortfolioHandler struct {
	portfolioService services.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(ps services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps}
}

// GetPublicPortfolio handles the public gallery listing (active items only).
func (h *PortfolioHandler) GetPublicPortfolio(c *gin.Context) {
	items, err := h.portfolioService.GetItems(false)
	if err != nil {
		utils.LogError(err, "GetPublicPortfolio: Error from portfolioService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch portfolio.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetAllPortfolio handles the admin listing, including inactive items.
func (h *PortfolioHandler) GetAllPortfolio(c *gin.Context) {
	items, err := h.portfolioService.GetItems(true)
	if err != nil {
		utils.LogError(err, "GetAllPortfolio: Error from portfolioService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch portfolio.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// UploadImage handles a multipart image upload and returns the public URL to
// embed in a subsequent create call. The bucket-missing case gets its own
// diagnostic so an operator knows the fix is in storage configuration.
func (h *PortfolioHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "An image file is required (multipart field \"image\").", err.Error()))
		return
	}
	if fileHeader.Size > maxImageUploadSize {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Image exceeds the maximum upload size.", ""))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "UploadImage: Failed to open multipart file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read uploaded file.", "Internal error"))
		return
	}
	defer file.Close()

	url, err := h.portfolioService.UploadImage(fileHeader.Filename, file)
	if err != nil {
		utils.LogError(err, "UploadImage: Error from portfolioService.UploadImage")
		if errors.Is(err, storage.ErrBucketNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeStorageFailure, "Storage configuration error: the portfolio bucket does not exist and must be created.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeStorageFailure, "Image upload failed.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// CreateItem handles creation of a showcase record after a successful upload.
func (h *PortfolioHandler) CreateItem(c *gin.Context) {
	var req services.CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.portfolioService.CreateItem(req)
	if err != nil {
		if errors.Is(err, services.ErrImageRequired) || errors.Is(err, services.ErrPortfolioValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.LogError(err, "CreateItem: Error from portfolioService.CreateItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create portfolio item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles toggling an item's visibility.
func (h *PortfolioHandler) UpdateItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid portfolio item ID.", err.Error()))
		return
	}

	var req services.UpdatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Request body must include is_active.", ""))
		return
	}

	if err := h.portfolioService.SetItemActive(id, *req.IsActive); err != nil {
		if errors.Is(err, services.ErrPortfolioNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Portfolio item not found.", err.Error()))
		} else {
			utils.LogError(err, "UpdateItem: Error from portfolioService.SetItemActive")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update portfolio item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item updated"})
}

// DeleteItem handles deleting a showcase record along with best-effort
// reclamation of its stored image.
func (h *PortfolioHandler) DeleteItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid portfolio item ID.", err.Error()))
		return
	}

	if err := h.portfolioService.DeleteItem(id); err != nil {
		if errors.Is(err, services.ErrPortfolioNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Portfolio item not found.", err.Error()))
		} else {
			utils.LogError(err, "DeleteItem: Error from portfolioService.DeleteItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete portfolio item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}
