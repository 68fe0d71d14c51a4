package gemini

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-whisper/internal/app/api/provider"
)

func newTestFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	return path
}

func generateContentReply(text string) string {
	return `{"candidates": [{"content": {"role": "model", "parts": [{"text": "` + text + `"}]}}]}`
}

func TestTranscript(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(generateContentReply("spoken words")))
	}))
	defer server.Close()

	g, err := New(provider.Settings{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := g.Transcript(newTestFile(t, "clip.mp3", 64))
	require.NoError(t, err)
	assert.Equal(t, "spoken words", text)
	assert.Contains(t, gotPath, defaultModel)
	assert.Contains(t, gotPath, "generateContent")

	// The request must carry the instruction and the inlined media bytes.
	raw, err := json.Marshal(gotBody)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Transcribe this recording")
	assert.Contains(t, string(raw), "audio/mp3")
}

func TestTranscript_ModelOverride(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(generateContentReply("ok")))
	}))
	defer server.Close()

	g, err := New(provider.Settings{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-2.5-pro",
	})
	require.NoError(t, err)

	_, err = g.Transcript(newTestFile(t, "clip.wav", 64))
	require.NoError(t, err)
	assert.Contains(t, gotPath, "gemini-2.5-pro")
}

func TestTranscript_InlineLimit(t *testing.T) {
	g, err := New(provider.Settings{APIKey: "test-key"})
	require.NoError(t, err)

	_, err = g.Transcript(newTestFile(t, "big.mp3", maxInlineBytes+1))
	var te *provider.TranscriptionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, provider.CodeFileTooLarge, te.Code)
	assert.Equal(t, "gemini", te.Provider)
}

func TestTranscript_MissingFile(t *testing.T) {
	g, err := New(provider.Settings{APIKey: "test-key"})
	require.NoError(t, err)

	_, err = g.Transcript(filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read media file")
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(provider.Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestInstruction(t *testing.T) {
	g, err := New(provider.Settings{
		APIKey:   "test-key",
		Language: "en",
		Prompt:   "medical terminology",
	})
	require.NoError(t, err)

	instruction := g.instruction()
	assert.True(t, strings.HasPrefix(instruction, basePrompt))
	assert.Contains(t, instruction, "language is en")
	assert.Contains(t, instruction, "Context: medical terminology")
}

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a.mp3", "audio/mp3"},
		{"a.MP4", "video/mp4"},
		{"a.wav", "audio/wav"},
		{"a.m4a", "audio/mp4"},
		{"a.webm", "video/webm"},
		{"a.unknown", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, mimeTypeFor(tt.path), tt.path)
	}
}
