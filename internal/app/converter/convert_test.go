package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-whisper/internal/app/api/provider"
	"clip-whisper/internal/app/testutil"
)

func openaiInfo() provider.Info {
	return provider.Info{
		Name:         "openai",
		DisplayName:  "OpenAI",
		EnvKey:       "OPENAI_API_KEY",
		DefaultModel: "whisper-1",
	}
}

func newTestConverter(transcriber *testutil.MockTranscriber, dao *testutil.MockTranscriptionDAO) (*Converter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := Config{
		Transcriber: transcriber,
		Provider:    openaiInfo(),
		Model:       "whisper-1",
		Out:         out,
	}
	if dao != nil {
		cfg.History = dao
	}
	return NewConverter(cfg), out
}

func createMediaFile(t *testing.T, name string, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake media"), 0644))
	if size > 0 {
		require.NoError(t, os.Truncate(path, size))
	}
	return path
}

func TestConverter_Do_Success(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	dao := testutil.NewMockTranscriptionDAO()
	converter, out := newTestConverter(transcriber, dao)

	inputPath := createMediaFile(t, "meeting.mp4", 0)
	transcriber.WithResponse(inputPath, "Hello, this is the meeting transcript.")

	err := converter.Do(inputPath)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, fmt.Sprintf("Transcribing: %s\n", inputPath))
	assert.Contains(t, output, "File size: 0.0MB\n")
	assert.Contains(t, output, "Processing... (this may take a moment)\n")
	assert.Contains(t, output, strings.Repeat("=", 50)+"\nTRANSCRIPTION:\n"+strings.Repeat("=", 50))
	assert.Contains(t, output, "Hello, this is the meeting transcript.")
	assert.NotContains(t, output, "Transcription failed.")

	outputPath := strings.TrimSuffix(inputPath, ".mp4") + "_transcript.txt"
	assert.Contains(t, output, fmt.Sprintf("\nTranscription saved to: %s\n", outputPath))

	saved, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "Hello, this is the meeting transcript.", string(saved))

	assert.Equal(t, 1, transcriber.CallCount)
}

func TestConverter_Do_FileNotFound(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	converter, out := newTestConverter(transcriber, nil)

	missing := filepath.Join(t.TempDir(), "missing.mp4")
	err := converter.Do(missing)
	require.Error(t, err)

	output := out.String()
	assert.Contains(t, output, fmt.Sprintf("Error: File '%s' not found.\n", missing))
	assert.Contains(t, output, "Transcription failed.\n")
	assert.Zero(t, transcriber.CallCount)
}

func TestConverter_Do_FileTooLarge(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	converter, out := newTestConverter(transcriber, nil)

	inputPath := createMediaFile(t, "huge.mp4", 30*1048576)

	err := converter.Do(inputPath)
	require.Error(t, err)

	output := out.String()
	assert.Contains(t, output, "Error: File size (30.0MB) exceeds OpenAI's 25MB limit.\n")
	assert.Contains(t, output, "Consider splitting the file or using a smaller file.\n")
	assert.Contains(t, output, "Transcription failed.\n")
	assert.Zero(t, transcriber.CallCount)
}

func TestConverter_Do_ExactLimitAccepted(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	converter, out := newTestConverter(transcriber, nil)

	inputPath := createMediaFile(t, "limit.mp4", 25*1048576)
	transcriber.WithResponse(inputPath, "right at the limit")

	err := converter.Do(inputPath)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "File size: 25.0MB\n")
	assert.NotContains(t, output, "exceeds")
	assert.Equal(t, 1, transcriber.CallCount)
}

func TestConverter_Do_TranscriptionError(t *testing.T) {
	transcriber := testutil.NewMockTranscriber().
		WithError(errors.New("OpenAI API rate limit exceeded"))
	converter, out := newTestConverter(transcriber, nil)

	inputPath := createMediaFile(t, "clip.mp4", 0)

	err := converter.Do(inputPath)
	require.Error(t, err)

	output := out.String()
	assert.Contains(t, output, "Error during transcription: OpenAI API rate limit exceeded\n")
	assert.Contains(t, output, "Transcription failed.\n")

	// No artifact on failure.
	_, statErr := os.Stat(strings.TrimSuffix(inputPath, ".mp4") + "_transcript.txt")
	assert.True(t, os.IsNotExist(statErr))
}

func TestConverter_Do_OutputWriteFailure(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	converter, out := newTestConverter(transcriber, nil)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(inputPath, []byte("RIFF"), 0644))
	// A directory where the artifact should go makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "clip_transcript.txt"), 0755))

	err := converter.Do(inputPath)
	require.Error(t, err)

	output := out.String()
	assert.Contains(t, output, "TRANSCRIPTION:")
	assert.Contains(t, output, "Error saving transcription:")
	assert.Contains(t, output, "Transcription failed.\n")
	assert.NotContains(t, output, "Transcription saved to:")
}

func TestConverter_Do_OverwritesExistingArtifact(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	converter, _ := newTestConverter(transcriber, nil)

	inputPath := createMediaFile(t, "clip.mp4", 0)
	outputPath := strings.TrimSuffix(inputPath, ".mp4") + "_transcript.txt"
	require.NoError(t, os.WriteFile(outputPath, []byte("stale transcript"), 0644))

	transcriber.WithResponse(inputPath, "fresh transcript")
	require.NoError(t, converter.Do(inputPath))

	saved, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "fresh transcript", string(saved))
}

func TestConverter_Do_RecordsHistory(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	dao := testutil.NewMockTranscriptionDAO()
	converter, _ := newTestConverter(transcriber, dao)

	inputPath := createMediaFile(t, "meeting.mp4", 2048)
	transcriber.WithResponse(inputPath, "recorded transcript")

	require.NoError(t, converter.Do(inputPath))

	require.Len(t, dao.Records, 1)
	rec := dao.Records[0]
	assert.Equal(t, "meeting.mp4", rec.FileName)
	assert.Equal(t, inputPath, rec.FilePath)
	assert.Equal(t, int64(2048), rec.FileSizeBytes)
	assert.Equal(t, "openai", rec.Provider)
	assert.Equal(t, "whisper-1", rec.Model)
	assert.Equal(t, "recorded transcript", rec.Transcription)
	assert.Equal(t, strings.TrimSuffix(inputPath, ".mp4")+"_transcript.txt", rec.OutputPath)
	assert.Empty(t, rec.ErrorMessage)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestConverter_Do_RecordsFailure(t *testing.T) {
	transcriber := testutil.NewMockTranscriber().
		WithError(errors.New("OpenAI API key is invalid or missing"))
	dao := testutil.NewMockTranscriptionDAO()
	converter, _ := newTestConverter(transcriber, dao)

	inputPath := createMediaFile(t, "clip.mp4", 0)
	require.Error(t, converter.Do(inputPath))

	require.Len(t, dao.Records, 1)
	rec := dao.Records[0]
	assert.Empty(t, rec.Transcription)
	assert.Empty(t, rec.OutputPath)
	assert.Equal(t, "OpenAI API key is invalid or missing", rec.ErrorMessage)
}

func TestConverter_Do_HistoryFailureIsNotFatal(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	dao := testutil.NewMockTranscriptionDAO().
		WithRecordError(errors.New("database connection error"))
	converter, out := newTestConverter(transcriber, dao)

	inputPath := createMediaFile(t, "clip.mp4", 0)
	transcriber.WithResponse(inputPath, "still fine")

	require.NoError(t, converter.Do(inputPath))
	assert.Contains(t, out.String(), "Transcription saved to:")
}

func TestConverter_Close(t *testing.T) {
	tests := []struct {
		name     string
		dao      *testutil.MockTranscriptionDAO
		expected error
	}{
		{
			name: "no_history_configured",
			dao:  nil,
		},
		{
			name: "successful_close",
			dao:  testutil.NewMockTranscriptionDAO(),
		},
		{
			name:     "close_with_error",
			dao:      testutil.NewMockTranscriptionDAO().WithCloseError(errors.New("database close error")),
			expected: errors.New("database close error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter, _ := newTestConverter(testutil.NewMockTranscriber(), tt.dao)

			err := converter.Close()
			if tt.expected != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expected.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			if tt.dao != nil {
				assert.True(t, tt.dao.Closed)
			}
		})
	}
}
