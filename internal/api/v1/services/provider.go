package services

import (
	"context"

	"github.com/samber/lo"

	"clip-whisper/internal/api/v1/dto"
	"clip-whisper/internal/app/api/provider"
	"clip-whisper/internal/config"
)

// ProviderServiceImpl implements ProviderService on the process-wide
// provider registry.
type ProviderServiceImpl struct {
	providers *config.ProvidersConfig
}

// NewProviderService creates a new provider service
func NewProviderService(providers *config.ProvidersConfig) ProviderService {
	return &ProviderServiceImpl{providers: providers}
}

// List returns all registered providers, sorted by name.
func (s *ProviderServiceImpl) List(ctx context.Context) (*dto.ListProvidersResponse, error) {
	defaultName := s.providers.Resolve("")

	responses := lo.Map(provider.Registered(), func(name string, _ int) dto.ProviderResponse {
		info, err := provider.InfoFor(name)
		if err != nil {
			// Unregistered between Registered() and InfoFor(); should not happen.
			return dto.ProviderResponse{Name: name}
		}
		return dto.ProviderResponse{
			Name:         info.Name,
			DisplayName:  info.DisplayName,
			DefaultModel: info.DefaultModel,
			EnvKey:       info.EnvKey,
			Default:      info.Name == defaultName,
			Configured:   s.providers.MergedSettings(info).APIKey != "",
		}
	})

	return &dto.ListProvidersResponse{
		Providers: responses,
		Count:     len(responses),
	}, nil
}
