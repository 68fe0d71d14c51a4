package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"clip-whisper/internal/api/errors"
	"clip-whisper/internal/api/v1/dto"
	"clip-whisper/internal/app/api/provider"
	"clip-whisper/internal/app/audio"
	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/repository"
	"clip-whisper/internal/app/util/files"
	"clip-whisper/internal/app/utils"
	"clip-whisper/internal/config"
	"clip-whisper/internal/metrics"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	db        repository.TranscriptionDAO
	providers *config.ProvidersConfig
	cache     *TranscriptCache
	storage   StorageService
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewTranscriptionService creates a new transcription service. The cache and
// storage may be nil, which disables caching and archival respectively.
func NewTranscriptionService(
	db repository.TranscriptionDAO,
	providers *config.ProvidersConfig,
	cache *TranscriptCache,
	storage StorageService,
	m *metrics.Metrics,
	logger *zap.Logger,
) TranscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptionServiceImpl{
		db:        db,
		providers: providers,
		cache:     cache,
		storage:   storage,
		metrics:   m,
		logger:    logger,
	}
}

// Transcribe sends an uploaded media payload to the selected provider and
// returns the transcript. Identical payloads for the same provider and model
// are served from the cache when one is configured.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, params *TranscribeParams) (*dto.TranscriptionResponse, error) {
	start := time.Now()

	name := s.providers.Resolve(params.Provider)
	info, err := provider.InfoFor(name)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf(
			"Unknown provider '%s'; available: %s", name, strings.Join(provider.Registered(), ", ")))
	}

	size := int64(len(params.Data))
	if files.ExceedsUploadLimit(size) {
		s.metrics.RecordOversizedUpload()
		return nil, errors.NewPayloadTooLargeError(fmt.Sprintf(
			"File size (%s) exceeds the 25MB upload limit", files.FormatMiB(size)))
	}

	s.metrics.RecordRequest(info.Name)
	s.metrics.RecordUpload(size)

	settings := s.providers.MergedSettings(info)
	if params.Model != "" {
		settings.Model = params.Model
	}
	if params.Language != "" {
		settings.Language = params.Language
	}
	if params.Prompt != "" {
		settings.Prompt = params.Prompt
	}

	modelName := settings.Model
	if modelName == "" {
		modelName = info.DefaultModel
	}

	rec := &model.Transcription{
		FileName:      params.FileName,
		FileSizeBytes: size,
		Provider:      info.Name,
		Model:         modelName,
	}

	cacheKey := fmt.Sprintf("%s:%s:%s", info.Name, modelName, utils.HashBytes(params.Data))
	if text, ok := s.cache.Get(ctx, cacheKey); ok {
		s.metrics.RecordCacheHit()
		rec.Transcription = text
		s.recordRun(rec)
		return s.response(rec, text, true, start), nil
	}
	s.metrics.RecordCacheMiss()

	transcriber, err := provider.Create(info.Name, settings)
	if err != nil {
		s.metrics.RecordFailure(info.Name, "provider_unavailable", time.Since(start).Seconds())
		return nil, errors.NewServiceUnavailableError(fmt.Sprintf(
			"Provider '%s' is not available: %v", info.Name, err)).WithCode("provider_unavailable")
	}

	tmpPath, err := s.spoolUpload(params.FileName, params.Data)
	if err != nil {
		s.metrics.RecordFailure(info.Name, "spool_failed", time.Since(start).Seconds())
		return nil, errors.NewInternalError("Failed to stage upload for transcription")
	}
	defer os.Remove(tmpPath)

	if duration, err := audio.GetMediaDuration(tmpPath); err == nil {
		rec.AudioDuration = duration
	} else {
		s.logger.Debug("media duration probe failed", zap.String("file", params.FileName), zap.Error(err))
	}

	text, err := transcriber.Transcript(tmpPath)
	if err != nil {
		s.metrics.RecordFailure(info.Name, "provider_error", time.Since(start).Seconds())
		rec.ErrorMessage = err.Error()
		s.recordRun(rec)
		return nil, errors.NewInternalError(fmt.Sprintf(
			"Transcription failed: %v", err)).WithCode("provider_error")
	}
	s.metrics.RecordSuccess(info.Name, time.Since(start).Seconds())

	s.cache.Set(ctx, cacheKey, text)

	if s.storage != nil {
		key, err := s.storage.Archive(ctx, params.FileName, params.Data, "")
		if err != nil {
			s.logger.Warn("failed to archive upload", zap.String("file", params.FileName), zap.Error(err))
		} else {
			rec.FilePath = key
		}
	}

	rec.Transcription = text
	s.recordRun(rec)

	return s.response(rec, text, false, start), nil
}

// ListRecent returns the newest run-history rows, newest first.
func (s *TranscriptionServiceImpl) ListRecent(ctx context.Context, limit int) (*dto.ListTranscriptionsResponse, error) {
	if s.db == nil {
		return &dto.ListTranscriptionsResponse{Transcriptions: []dto.TranscriptionRecord{}}, nil
	}

	rows, err := s.db.GetRecent(limit)
	if err != nil {
		s.logger.Error("failed to query run history", zap.Error(err))
		return nil, errors.NewInternalError("Failed to list transcriptions")
	}

	records := lo.Map(rows, func(t model.Transcription, _ int) dto.TranscriptionRecord {
		return dto.ToTranscriptionRecord(t)
	})

	return &dto.ListTranscriptionsResponse{
		Transcriptions: records,
		Count:          len(records),
	}, nil
}

// spoolUpload writes the payload to a temp file carrying the original
// extension, since providers sniff the media format from the file name.
func (s *TranscriptionServiceImpl) spoolUpload(fileName string, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "c2t-upload-*"+filepath.Ext(fileName))
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// recordRun appends a run-history row. History is best-effort and never
// fails a request.
func (s *TranscriptionServiceImpl) recordRun(rec *model.Transcription) {
	if s.db == nil {
		return
	}
	rec.CreatedAt = time.Now()
	if err := s.db.RecordToDB(rec); err != nil {
		s.logger.Warn("failed to record run history", zap.String("file", rec.FileName), zap.Error(err))
	}
}

func (s *TranscriptionServiceImpl) response(rec *model.Transcription, text string, cached bool, start time.Time) *dto.TranscriptionResponse {
	return &dto.TranscriptionResponse{
		ID:        uuid.New().String(),
		FileName:  rec.FileName,
		Provider:  rec.Provider,
		Model:     rec.Model,
		SizeBytes: rec.FileSizeBytes,
		Text:      text,
		Cached:    cached,
		ElapsedMs: time.Since(start).Milliseconds(),
		CreatedAt: time.Now(),
	}
}
