package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"clip-whisper/internal/app/api/provider"
)

const (
	defaultModel = "gemini-2.5-flash"

	// Gemini rejects inline media payloads above this size; larger files
	// would need the separate file upload API.
	maxInlineBytes = 20 * 1024 * 1024

	basePrompt = "Transcribe this recording. Return only the transcript text with no additional commentary."
)

// Transcriber implements transcription via the Gemini generateContent API,
// inlining the media bytes into a single request.
type Transcriber struct {
	client   *genai.Client
	settings provider.Settings
}

// New creates a Transcriber from merged provider settings.
func New(settings provider.Settings) (*Transcriber, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("gemini provider requires an API key")
	}
	if settings.Model == "" {
		settings.Model = defaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: settings.BaseURL}
	}
	if settings.TimeoutSec > 0 {
		cfg.HTTPClient = &http.Client{Timeout: time.Duration(settings.TimeoutSec) * time.Second}
	}

	client, err := genai.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Transcriber{client: client, settings: settings}, nil
}

// Transcript sends the media file inline to Gemini and returns the text reply.
func (g *Transcriber) Transcript(inputFilePath string) (string, error) {
	data, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read media file: %w", err)
	}
	if len(data) > maxInlineBytes {
		return "", &provider.TranscriptionError{
			Code:      provider.CodeFileTooLarge,
			Message:   fmt.Sprintf("file exceeds Gemini's %dMB inline limit", maxInlineBytes/(1024*1024)),
			Provider:  "gemini",
			Retryable: false,
		}
	}

	parts := []*genai.Part{
		genai.NewPartFromText(g.instruction()),
		genai.NewPartFromBytes(data, mimeTypeFor(inputFilePath)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var config *genai.GenerateContentConfig
	if g.settings.Temperature > 0 {
		config = &genai.GenerateContentConfig{Temperature: genai.Ptr(g.settings.Temperature)}
	}

	resp, err := g.client.Models.GenerateContent(context.Background(), g.settings.Model, contents, config)
	if err != nil {
		return "", handleAPIError(err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

func (g *Transcriber) instruction() string {
	instruction := basePrompt
	if g.settings.Language != "" {
		instruction += fmt.Sprintf(" The recording language is %s.", g.settings.Language)
	}
	if g.settings.Prompt != "" {
		instruction += " Context: " + g.settings.Prompt
	}
	return instruction
}

// mimeTypeFor guesses the request MIME type from the file extension.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mp3"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".aac":
		return "audio/aac"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	default:
		return "application/octet-stream"
	}
}

// handleAPIError converts Gemini API errors to TranscriptionError.
func handleAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &provider.TranscriptionError{
				Code:      provider.CodeAuthenticationFailed,
				Message:   "Gemini API key is invalid or missing",
				Provider:  "gemini",
				Retryable: false,
			}
		case http.StatusTooManyRequests:
			return &provider.TranscriptionError{
				Code:      provider.CodeRateLimitExceeded,
				Message:   "Gemini API rate limit exceeded",
				Provider:  "gemini",
				Retryable: true,
			}
		case http.StatusBadRequest:
			return &provider.TranscriptionError{
				Code:      provider.CodeInvalidFile,
				Message:   fmt.Sprintf("Gemini rejected the request: %s", apiErr.Message),
				Provider:  "gemini",
				Retryable: false,
			}
		default:
			return &provider.TranscriptionError{
				Code:      provider.CodeAPIError,
				Message:   fmt.Sprintf("Gemini API error: %s", apiErr.Message),
				Provider:  "gemini",
				Retryable: apiErr.Code >= 500,
			}
		}
	}
	return fmt.Errorf("generateContent failed: %w", err)
}
