package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	t.Setenv("C2T_TEST_KEY", "  sk-abc123  ")
	assert.Equal(t, "sk-abc123", APIKey("C2T_TEST_KEY"))
	assert.Equal(t, "", APIKey("C2T_TEST_KEY_UNSET"))
}

func TestKeyFormatWarning(t *testing.T) {
	testCases := []struct {
		name        string
		envKey      string
		value       string
		wantWarning bool
	}{
		{
			name:   "valid OpenAI key",
			envKey: "OPENAI_API_KEY",
			value:  "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:        "OpenAI key without prefix",
			envKey:      "OPENAI_API_KEY",
			value:       "invalid-key-1234567890abcdef",
			wantWarning: true,
		},
		{
			name:        "OpenAI key too short",
			envKey:      "OPENAI_API_KEY",
			value:       "sk-short",
			wantWarning: true,
		},
		{
			name:   "valid Gemini key",
			envKey: "GEMINI_API_KEY",
			value:  "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:        "Gemini key without prefix",
			envKey:      "GEMINI_API_KEY",
			value:       "invalid-key-1234567890abcdef123456",
			wantWarning: true,
		},
		{
			name:   "ElevenLabs keys have no fixed shape",
			envKey: "ELEVENLABS_API_KEY",
			value:  "whatever-shape",
		},
		{
			name:   "empty value never warns",
			envKey: "OPENAI_API_KEY",
			value:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			warning := KeyFormatWarning(tc.envKey, tc.value)
			if tc.wantWarning {
				assert.NotEmpty(t, warning)
				assert.Contains(t, warning, tc.envKey)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("C2T_DOTENV_PROBE=loaded\n"),
		0644,
	))

	restore := chdir(t, dir)
	defer restore()

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "loaded", os.Getenv("C2T_DOTENV_PROBE"))
	os.Unsetenv("C2T_DOTENV_PROBE")
}

func TestLoadEnvMissing(t *testing.T) {
	// Nested so the ../ and ../../ probe paths are empty as well.
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, os.MkdirAll(dir, 0755))

	restore := chdir(t, dir)
	defer restore()

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() {
		require.NoError(t, os.Chdir(old))
	}
}
