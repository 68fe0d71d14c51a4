package model

import "time"

// Transcription is one run-history row: a single file sent to a provider.
// Failed runs are recorded too, with ErrorMessage set and an empty transcript.
type Transcription struct {
	ID            int
	FileName      string
	FilePath      string
	FileSizeBytes int64
	AudioDuration float64
	Provider      string
	Model         string
	Transcription string
	OutputPath    string
	ErrorMessage  string
	CreatedAt     time.Time
}
