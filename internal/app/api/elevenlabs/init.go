package elevenlabs

import (
	"clip-whisper/internal/app/api"
	"clip-whisper/internal/app/api/provider"
)

func init() {
	provider.Register(provider.Info{
		Name:         "elevenlabs",
		DisplayName:  "ElevenLabs",
		EnvKey:       "ELEVENLABS_API_KEY",
		DefaultModel: defaultModel,
	}, func(settings provider.Settings) (api.Transcriber, error) {
		return New(settings)
	})
}
