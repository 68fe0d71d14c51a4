package converter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"clip-whisper/internal/app/api"
	"clip-whisper/internal/app/api/provider"
	"clip-whisper/internal/app/audio"
	"clip-whisper/internal/app/errors"
	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/repository"
	"clip-whisper/internal/app/util/files"
)

var separator = strings.Repeat("=", 50)

// Config carries everything a Converter needs. History and Logger are
// optional; Out defaults to os.Stdout.
type Config struct {
	Transcriber api.Transcriber
	Provider    provider.Info
	Model       string
	History     repository.TranscriptionDAO
	Out         io.Writer
	Progress    ProgressConfig
	Logger      *zap.Logger
}

// Converter runs the single-file transcription flow: validate the input,
// upload it to the provider, echo the transcript and save it next to the
// input file.
type Converter struct {
	transcriber api.Transcriber
	info        provider.Info
	model       string
	db          repository.TranscriptionDAO
	out         io.Writer
	progress    ProgressConfig
	logger      *zap.Logger
}

func NewConverter(cfg Config) *Converter {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		transcriber: cfg.Transcriber,
		info:        cfg.Provider,
		model:       cfg.Model,
		db:          cfg.History,
		out:         out,
		progress:    cfg.Progress,
		logger:      logger,
	}
}

func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Do transcribes a single media file end to end. Every message the user
// sees goes through c.out; a non-nil return means the run failed and the
// process should exit nonzero.
func (c *Converter) Do(inputFilePath string) error {
	rec := &model.Transcription{
		FileName: filepath.Base(inputFilePath),
		FilePath: inputFilePath,
		Provider: c.info.Name,
		Model:    c.model,
	}
	defer c.record(rec)

	transcription, err := c.convertToText(inputFilePath, rec)
	if err != nil {
		rec.ErrorMessage = err.Error()
		fmt.Fprintln(c.out, "Transcription failed.")
		return err
	}
	rec.Transcription = transcription

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, separator)
	fmt.Fprintln(c.out, "TRANSCRIPTION:")
	fmt.Fprintln(c.out, separator)
	fmt.Fprintln(c.out, transcription)
	fmt.Fprintln(c.out, separator)

	outputPath := files.TranscriptPath(inputFilePath)
	if err := os.WriteFile(outputPath, []byte(transcription), 0644); err != nil {
		rec.ErrorMessage = fmt.Sprintf("failed to save transcript: %v", err)
		fmt.Fprintf(c.out, "Error saving transcription: %v\n", err)
		fmt.Fprintln(c.out, "Transcription failed.")
		return errors.Wrapf(err, "failed to save transcript to '%s'", outputPath)
	}
	rec.OutputPath = outputPath

	fmt.Fprintf(c.out, "\nTranscription saved to: %s\n", outputPath)
	return nil
}

func (c *Converter) convertToText(inputFilePath string, rec *model.Transcription) (string, error) {
	fileInfo, err := os.Stat(inputFilePath)
	if err != nil {
		fmt.Fprintf(c.out, "Error: File '%s' not found.\n", inputFilePath)
		return "", errors.Wrapf(errors.ErrFileNotFound, "file '%s'", inputFilePath)
	}
	rec.FileSizeBytes = fileInfo.Size()

	if files.ExceedsUploadLimit(fileInfo.Size()) {
		fmt.Fprintf(c.out, "Error: File size (%s) exceeds %s's 25MB limit.\n",
			files.FormatMiB(fileInfo.Size()), c.info.DisplayName)
		fmt.Fprintln(c.out, "Consider splitting the file or using a smaller file.")
		return "", errors.Wrapf(errors.ErrFileTooLarge, "file size %s", files.FormatMiB(fileInfo.Size()))
	}

	fmt.Fprintf(c.out, "Transcribing: %s\n", inputFilePath)
	fmt.Fprintf(c.out, "File size: %s\n", files.FormatMiB(fileInfo.Size()))

	// Best effort; absence of ffprobe only leaves the history duration at 0.
	if duration, err := audio.GetMediaDuration(inputFilePath); err == nil {
		rec.AudioDuration = duration
	} else {
		c.logger.Debug("duration probe failed", zap.String("file", inputFilePath), zap.Error(err))
	}

	fmt.Fprintln(c.out, "Processing... (this may take a moment)")

	spin := startSpinner(c.progress, "Transcribing ")
	transcription, err := c.transcriber.Transcript(inputFilePath)
	spin.Stop()

	if err != nil {
		fmt.Fprintf(c.out, "Error during transcription: %v\n", err)
		return "", err
	}
	return transcription, nil
}

// record appends the run to the history. Failures are logged and swallowed
// so history never changes the outcome of a run.
func (c *Converter) record(rec *model.Transcription) {
	if c.db == nil {
		return
	}
	rec.CreatedAt = time.Now()
	if err := c.db.RecordToDB(rec); err != nil {
		c.logger.Warn("failed to record run history", zap.Error(err))
	}
}
