package services

import (
	"context"

	"clip-whisper/internal/api/v1/dto"
)

// TranscribeParams carries one upload through the transcription pipeline.
// Data is the full media payload; FileName is the client-supplied name and
// is used only for display, extension detection and run history.
type TranscribeParams struct {
	FileName string
	Data     []byte
	Provider string
	Model    string
	Language string
	Prompt   string
}

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	Transcribe(ctx context.Context, params *TranscribeParams) (*dto.TranscriptionResponse, error)
	ListRecent(ctx context.Context, limit int) (*dto.ListTranscriptionsResponse, error)
}

// ProviderService defines the interface for provider catalog operations
type ProviderService interface {
	List(ctx context.Context) (*dto.ListProvidersResponse, error)
}
