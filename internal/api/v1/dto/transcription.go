package dto

import (
	"time"

	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/util/files"
)

// TranscribeForm represents the multipart form fields accepted alongside the
// uploaded file on POST /api/v1/transcriptions. The file itself arrives in
// the "file" part and is read by the handler.
type TranscribeForm struct {
	Provider string `form:"provider" binding:"omitempty,max=64"`
	Model    string `form:"model" binding:"omitempty,max=128"`
	Language string `form:"language" binding:"omitempty,max=16"`
	Prompt   string `form:"prompt" binding:"omitempty,max=2048"`
}

// TranscriptionResponse represents a completed transcription in API responses
type TranscriptionResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model,omitempty"`
	SizeBytes int64     `json:"size_bytes"`
	Text      string    `json:"text"`
	Cached    bool      `json:"cached"`
	ElapsedMs int64     `json:"elapsed_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// TranscriptionRecord represents one run-history row in list responses
type TranscriptionRecord struct {
	ID            int       `json:"id"`
	FileName      string    `json:"file_name"`
	Provider      string    `json:"provider"`
	Model         string    `json:"model,omitempty"`
	SizeMB        float64   `json:"size_mb"`
	DurationSec   float64   `json:"duration_sec,omitempty"`
	Transcription string    `json:"transcription,omitempty"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListTranscriptionsQuery represents query parameters for listing run history
type ListTranscriptionsQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// ListTranscriptionsResponse represents the run-history list payload
type ListTranscriptionsResponse struct {
	Transcriptions []TranscriptionRecord `json:"transcriptions"`
	Count          int                   `json:"count"`
}

// ToTranscriptionRecord converts a history model to its response DTO
func ToTranscriptionRecord(t model.Transcription) TranscriptionRecord {
	return TranscriptionRecord{
		ID:            t.ID,
		FileName:      t.FileName,
		Provider:      t.Provider,
		Model:         t.Model,
		SizeMB:        files.SizeInMiB(t.FileSizeBytes),
		DurationSec:   t.AudioDuration,
		Transcription: t.Transcription,
		Error:         t.ErrorMessage,
		CreatedAt:     t.CreatedAt,
	}
}
