package api

// Transcriber defines a transcription interface for converting media files to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}
