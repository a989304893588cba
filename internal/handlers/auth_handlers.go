package handlers

import (
	"errors"
	"net/http"

	"tenthouse_backend/internal/services"
	"tenthouse_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginAdmin handles admin login. Wrong credentials and a valid login on a
// non-admin account are reported inline; the latter deliberately does not
// reveal that the password was correct.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	authResp, err := h.authService.LoginAdmin(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
		} else if errors.Is(err, services.ErrNotAnAdmin) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Access denied: not an authorized admin.", ""))
		} else {
			utils.LogError(err, "LoginAdmin: Error from authService.LoginAdmin")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to login.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// GetCurrentAdmin retrieves the profile of the currently authenticated admin.
func (h *AuthHandler) GetCurrentAdmin(c *gin.Context) {
	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}
	adminID, ok := adminIDRaw.(int64)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Invalid admin identity in context.", ""))
		return
	}

	admin, err := h.authService.GetAdminProfile(adminID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Admin account not found.", ""))
		} else {
			utils.LogError(err, "GetCurrentAdmin: Error from authService.GetAdminProfile")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch profile.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, admin)
}
