package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"clip-whisper/internal/api/errors"
	"clip-whisper/internal/api/middleware"
	"clip-whisper/internal/api/v1/dto"
	"clip-whisper/internal/api/v1/services"
)

// maxRequestBytes bounds the multipart body read into memory. It leaves
// headroom over the media limit so oversized uploads still reach the
// service and get a proper 413 instead of a truncated read.
const maxRequestBytes = 32 << 20

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Create handles POST /api/v1/transcriptions
// Transcribes an uploaded media file
//
// @Summary Transcribe an uploaded media file
// @Description Uploads a single audio or video file and returns its transcript. The file must not exceed 25MB.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file to transcribe"
// @Param provider formData string false "Provider name (defaults to the configured default)"
// @Param model formData string false "Model override"
// @Param language formData string false "Language hint, e.g. en"
// @Param prompt formData string false "Context prompt passed to the provider"
// @Success 201 {object} dto.TranscriptionResponse "Transcript"
// @Failure 400 {object} errors.APIError "Bad request - missing file or unknown provider"
// @Failure 413 {object} errors.APIError "File exceeds the 25MB upload limit"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Failure 503 {object} errors.APIError "Provider not available"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	var form dto.TranscribeForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Missing 'file' upload field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to read upload"))
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), &services.TranscribeParams{
		FileName: filepath.Base(header.Filename),
		Data:     data,
		Provider: form.Provider,
		Model:    form.Model,
		Language: form.Language,
		Prompt:   form.Prompt,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/v1/transcriptions
// Lists recent run history
//
// @Summary List recent transcriptions
// @Description Retrieves the newest run-history entries, newest first
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param limit query int false "Maximum entries to return" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.ListTranscriptionsResponse "Run history"
// @Failure 422 {object} errors.APIError "Invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	var query dto.ListTranscriptionsQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListRecent(c.Request.Context(), query.Limit)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
