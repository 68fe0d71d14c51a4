package repository

import (
	"clip-whisper/internal/app/model"
)

// DefaultRecentLimit caps GetRecent when the caller passes no usable limit.
const DefaultRecentLimit = 10

// TranscriptionDAO persists the local run history. The history is append
// only: finished runs are recorded once and never updated.
type TranscriptionDAO interface {
	Close() error

	// RecordToDB appends a single finished run to the history.
	RecordToDB(t *model.Transcription) error

	// GetRecent returns the most recent runs, newest first.
	GetRecent(limit int) ([]model.Transcription, error)
}
