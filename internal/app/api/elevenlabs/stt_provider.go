package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"clip-whisper/internal/app/api/provider"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io/v1"
	defaultModel   = "whisper-large-v3"
	defaultTimeout = 120 * time.Second
)

// STTProvider implements transcription against the ElevenLabs speech-to-text API.
type STTProvider struct {
	settings provider.Settings
	client   *http.Client
}

// Response is the subset of the ElevenLabs response body we consume.
type Response struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// New creates an STTProvider from merged provider settings.
func New(settings provider.Settings) (*STTProvider, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs provider requires an API key")
	}
	if settings.BaseURL == "" {
		settings.BaseURL = defaultBaseURL
	}
	if settings.Model == "" {
		settings.Model = defaultModel
	}
	timeout := defaultTimeout
	if settings.TimeoutSec > 0 {
		timeout = time.Duration(settings.TimeoutSec) * time.Second
	}

	return &STTProvider{
		settings: settings,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Transcript uploads the file to the ElevenLabs speech-to-text endpoint and
// returns the recognized text.
func (p *STTProvider) Transcript(inputFilePath string) (string, error) {
	req, err := p.newRequest(context.Background(), inputFilePath)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &provider.TranscriptionError{
			Code:      provider.CodeNetworkError,
			Message:   fmt.Sprintf("failed to call ElevenLabs API: %v", err),
			Provider:  "elevenlabs",
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", handleHTTPError(resp)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &provider.TranscriptionError{
			Code:      provider.CodeAPIError,
			Message:   fmt.Sprintf("failed to parse API response: %v", err),
			Provider:  "elevenlabs",
			Retryable: false,
		}
	}
	return out.Text, nil
}

func (p *STTProvider) newRequest(ctx context.Context, inputFilePath string) (*http.Request, error) {
	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", filepath.Base(inputFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := writer.WriteField("model", p.settings.Model); err != nil {
		return nil, fmt.Errorf("failed to add model field: %w", err)
	}
	if p.settings.Language != "" {
		if err := writer.WriteField("language", p.settings.Language); err != nil {
			return nil, fmt.Errorf("failed to add language field: %w", err)
		}
	}
	writer.Close()

	url := fmt.Sprintf("%s/speech-to-text", p.settings.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("xi-api-key", p.settings.APIKey)
	req.Header.Set("User-Agent", "clip-whisper/1.0")
	return req, nil
}

// handleHTTPError maps ElevenLabs HTTP error responses to TranscriptionError.
func handleHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &provider.TranscriptionError{
			Code:      provider.CodeAuthenticationFailed,
			Message:   "ElevenLabs API key is invalid or missing",
			Provider:  "elevenlabs",
			Retryable: false,
		}
	case http.StatusTooManyRequests:
		return &provider.TranscriptionError{
			Code:      provider.CodeRateLimitExceeded,
			Message:   "ElevenLabs API rate limit exceeded",
			Provider:  "elevenlabs",
			Retryable: true,
		}
	case http.StatusRequestEntityTooLarge:
		return &provider.TranscriptionError{
			Code:      provider.CodeFileTooLarge,
			Message:   "audio file is too large for the ElevenLabs API",
			Provider:  "elevenlabs",
			Retryable: false,
		}
	case http.StatusBadRequest:
		return &provider.TranscriptionError{
			Code:      provider.CodeInvalidFile,
			Message:   fmt.Sprintf("ElevenLabs rejected the request: %s", string(body)),
			Provider:  "elevenlabs",
			Retryable: false,
		}
	default:
		return &provider.TranscriptionError{
			Code:      provider.CodeAPIError,
			Message:   fmt.Sprintf("unexpected HTTP status %d: %s", resp.StatusCode, string(body)),
			Provider:  "elevenlabs",
			Retryable: resp.StatusCode >= 500,
		}
	}
}
