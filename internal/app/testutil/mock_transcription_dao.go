package testutil

import (
	"sync"

	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/repository"
)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	Records []model.Transcription

	RecordError error
	QueryError  error
	CloseError  error
	Closed      bool
}

var _ repository.TranscriptionDAO = (*MockTranscriptionDAO)(nil)

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{}
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseError
}

func (m *MockTranscriptionDAO) RecordToDB(t *model.Transcription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.RecordError != nil {
		return m.RecordError
	}
	rec := *t
	rec.ID = len(m.Records) + 1
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockTranscriptionDAO) GetRecent(limit int) ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryError != nil {
		return nil, m.QueryError
	}
	if limit <= 0 {
		limit = repository.DefaultRecentLimit
	}

	// Newest first.
	recent := make([]model.Transcription, 0, limit)
	for i := len(m.Records) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, m.Records[i])
	}
	return recent, nil
}

func (m *MockTranscriptionDAO) WithCloseError(err error) *MockTranscriptionDAO {
	m.CloseError = err
	return m
}

func (m *MockTranscriptionDAO) WithRecordError(err error) *MockTranscriptionDAO {
	m.RecordError = err
	return m
}
