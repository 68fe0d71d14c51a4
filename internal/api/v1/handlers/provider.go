package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-whisper/internal/api/middleware"
	"clip-whisper/internal/api/v1/services"
)

// ProviderHandler handles provider catalog endpoints
type ProviderHandler struct {
	service services.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		service: service,
	}
}

// List handles GET /api/v1/providers
// Lists registered transcription providers
//
// @Summary List transcription providers
// @Description Retrieves all registered providers with their default model and configuration status
// @Tags providers
// @Accept json
// @Produce json
// @Success 200 {object} dto.ListProvidersResponse "Registered providers"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	response, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
