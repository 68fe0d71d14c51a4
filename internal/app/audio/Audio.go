package audio

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetMediaDuration probes the media duration in seconds using ffprobe.
// Callers treat failures as "duration unknown"; a missing ffprobe binary
// must not break transcription.
func GetMediaDuration(filePath string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's bare duration output.
func ParseDuration(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	duration, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe output %q: %w", trimmed, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("negative duration %v", duration)
	}
	return duration, nil
}
