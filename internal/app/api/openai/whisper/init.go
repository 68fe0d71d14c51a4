package whisper

import (
	"clip-whisper/internal/app/api"
	"clip-whisper/internal/app/api/provider"
)

func init() {
	provider.Register(provider.Info{
		Name:         "openai",
		DisplayName:  "OpenAI",
		EnvKey:       "OPENAI_API_KEY",
		DefaultModel: "whisper-1",
	}, func(settings provider.Settings) (api.Transcriber, error) {
		return New(settings)
	})
}
