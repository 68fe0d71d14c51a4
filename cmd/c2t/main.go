package main

import (
	"fmt"
	"os"

	"clip-whisper/cmd/c2t/cmd"
	"clip-whisper/internal/config"

	// Import providers to register them
	_ "clip-whisper/internal/app/api/elevenlabs"
	_ "clip-whisper/internal/app/api/gemini"
	_ "clip-whisper/internal/app/api/openai/whisper"
)

// @title clip-whisper API
// @version 1.0
// @description Single-file audio and video transcription over HTTP
// @BasePath /api/v1
func main() {
	// Load .env before anything reads credentials. A missing file is fine;
	// keys may be exported system-wide.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd.Execute()
}
