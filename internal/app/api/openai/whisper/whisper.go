package whisper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"clip-whisper/internal/app/api/provider"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client   *openai.Client
	settings provider.Settings
}

// New creates a RemoteTranscriber from merged provider settings.
func New(settings provider.Settings) (*RemoteTranscriber, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key")
	}

	clientConfig := openai.DefaultConfig(settings.APIKey)
	if settings.BaseURL != "" {
		clientConfig.BaseURL = settings.BaseURL
	}
	if settings.TimeoutSec > 0 {
		clientConfig.HTTPClient = &http.Client{
			Timeout: time.Duration(settings.TimeoutSec) * time.Second,
		}
	}

	return &RemoteTranscriber{
		client:   openai.NewClientWithConfig(clientConfig),
		settings: settings,
	}, nil
}

// Transcript uses the OpenAI API for remote transcription.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	ctx := context.Background()

	req := openai.AudioRequest{
		Model:       rt.model(),
		FilePath:    inputFilePath,
		Language:    rt.settings.Language,
		Prompt:      rt.settings.Prompt,
		Temperature: rt.settings.Temperature,
		Format:      rt.responseFormat(),
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", handleAPIError(err)
	}

	return resp.Text, nil
}

func (rt *RemoteTranscriber) model() string {
	if rt.settings.Model != "" {
		return rt.settings.Model
	}
	return string(openai.Whisper1)
}

func (rt *RemoteTranscriber) responseFormat() openai.AudioResponseFormat {
	switch strings.ToLower(rt.settings.ResponseFormat) {
	case "json":
		return openai.AudioResponseFormatJSON
	case "verbose_json":
		return openai.AudioResponseFormatVerboseJSON
	case "srt":
		return openai.AudioResponseFormatSRT
	case "vtt":
		return openai.AudioResponseFormatVTT
	default:
		return openai.AudioResponseFormatText
	}
}

// handleAPIError converts OpenAI API errors to TranscriptionError.
func handleAPIError(err error) error {
	if apiErr, ok := err.(*openai.APIError); ok {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return &provider.TranscriptionError{
				Code:      provider.CodeAuthenticationFailed,
				Message:   "OpenAI API key is invalid or missing",
				Provider:  "openai",
				Retryable: false,
			}
		case http.StatusTooManyRequests:
			return &provider.TranscriptionError{
				Code:      provider.CodeRateLimitExceeded,
				Message:   "OpenAI API rate limit exceeded",
				Provider:  "openai",
				Retryable: true,
			}
		case http.StatusRequestEntityTooLarge:
			return &provider.TranscriptionError{
				Code:      provider.CodeFileTooLarge,
				Message:   "audio file is too large for the OpenAI API",
				Provider:  "openai",
				Retryable: false,
			}
		case http.StatusBadRequest:
			return &provider.TranscriptionError{
				Code:      provider.CodeInvalidFile,
				Message:   fmt.Sprintf("OpenAI rejected the file: %v", apiErr.Message),
				Provider:  "openai",
				Retryable: false,
			}
		default:
			return &provider.TranscriptionError{
				Code:      provider.CodeAPIError,
				Message:   fmt.Sprintf("OpenAI API error: %v", apiErr.Message),
				Provider:  "openai",
				Retryable: true,
			}
		}
	}

	return fmt.Errorf("createTranscription failed: %s", err)
}
