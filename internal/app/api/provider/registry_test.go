package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-whisper/internal/app/api"
)

type stubTranscriber struct {
	text string
}

func (s stubTranscriber) Transcript(inputFilePath string) (string, error) {
	return s.text, nil
}

func TestRegisterAndCreate(t *testing.T) {
	info := Info{
		Name:         "stub-create",
		DisplayName:  "Stub",
		EnvKey:       "STUB_API_KEY",
		DefaultModel: "stub-1",
	}
	var gotSettings Settings
	Register(info, func(settings Settings) (api.Transcriber, error) {
		gotSettings = settings
		return stubTranscriber{text: "hello"}, nil
	})

	transcriber, err := Create("stub-create", Settings{Model: "stub-2", Language: "en"})
	require.NoError(t, err)

	text, err := transcriber.Transcript("ignored.mp3")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "stub-2", gotSettings.Model)
	assert.Equal(t, "en", gotSettings.Language)
}

func TestCreateUnregistered(t *testing.T) {
	_, err := Create("no-such-provider", Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestInfoFor(t *testing.T) {
	info := Info{
		Name:        "stub-info",
		DisplayName: "Stub Info",
		EnvKey:      "STUB_INFO_KEY",
	}
	Register(info, func(Settings) (api.Transcriber, error) {
		return stubTranscriber{}, nil
	})

	got, err := InfoFor("stub-info")
	require.NoError(t, err)
	assert.Equal(t, "Stub Info", got.DisplayName)
	assert.Equal(t, "STUB_INFO_KEY", got.EnvKey)

	_, err = InfoFor("missing")
	assert.Error(t, err)
}

func TestRegisteredSorted(t *testing.T) {
	Register(Info{Name: "zz-stub"}, func(Settings) (api.Transcriber, error) {
		return stubTranscriber{}, nil
	})
	Register(Info{Name: "aa-stub"}, func(Settings) (api.Transcriber, error) {
		return stubTranscriber{}, nil
	})

	names := Registered()
	require.Contains(t, names, "aa-stub")
	require.Contains(t, names, "zz-stub")
	assert.IsType(t, []string{}, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestTranscriptionErrorMessage(t *testing.T) {
	err := &TranscriptionError{
		Code:     CodeRateLimitExceeded,
		Message:  "rate limit exceeded, try again later",
		Provider: "openai",
	}
	assert.Equal(t, "rate limit exceeded, try again later", err.Error())
}
