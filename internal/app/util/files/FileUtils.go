package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BytesPerMiB is the divisor for user-facing size figures.
const BytesPerMiB = 1048576

// MaxUploadMiB is the upload ceiling enforced before any network activity.
// A file of exactly this size is still accepted.
const MaxUploadMiB = 25.0

// SizeInMiB converts a byte count to MiB.
func SizeInMiB(bytes int64) float64 {
	return float64(bytes) / BytesPerMiB
}

// FormatMiB renders a size with one decimal place, as shown to users.
func FormatMiB(bytes int64) string {
	return fmt.Sprintf("%.1fMB", SizeInMiB(bytes))
}

// ExceedsUploadLimit reports whether a file is strictly larger than the
// upload ceiling.
func ExceedsUploadLimit(bytes int64) bool {
	return SizeInMiB(bytes) > MaxUploadMiB
}

// TranscriptPath returns the artifact path for an input file: same directory,
// final extension replaced by a "_transcript.txt" suffix.
func TranscriptPath(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	// Dotfiles like ".env" have no extension to strip.
	if ext == base {
		ext = ""
	}
	return strings.TrimSuffix(inputPath, ext) + "_transcript.txt"
}

// ReadOutputFile reads a transcript artifact and returns its trimmed content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}
