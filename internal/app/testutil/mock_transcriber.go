package testutil

import (
	"sync"

	"clip-whisper/internal/app/api"
)

// MockTranscriber is a configurable api.Transcriber for tests. Responses can
// be set per file or globally; every call is tracked.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	CallCount int
	Calls     []string
}

var _ api.Transcriber = (*MockTranscriber)(nil)

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Calls = append(m.Calls, inputFilePath)

	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if response, ok := m.ResponseMap[inputFilePath]; ok {
		return response, nil
	}
	return m.DefaultResponse, nil
}

// WithResponse sets the transcript returned for a specific file.
func (m *MockTranscriber) WithResponse(inputFilePath, response string) *MockTranscriber {
	m.ResponseMap[inputFilePath] = response
	return m
}

// WithError makes every call fail with err.
func (m *MockTranscriber) WithError(err error) *MockTranscriber {
	m.DefaultError = err
	return m
}
