package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"clip-whisper/internal/app/api/provider"
)

// EnvProvidersConfig overrides the providers.yaml location.
const EnvProvidersConfig = "C2T_PROVIDERS_CONFIG"

// ProvidersConfig is the optional per-user provider configuration file.
// Values of the form ${VAR} are expanded from the environment after parsing,
// so API keys can be referenced without being written to disk.
type ProvidersConfig struct {
	DefaultProvider string                       `yaml:"default_provider"`
	Providers       map[string]provider.Settings `yaml:"providers"`
}

// DefaultProvidersPath returns the providers.yaml location, honoring the
// C2T_PROVIDERS_CONFIG override.
func DefaultProvidersPath() string {
	if path := strings.TrimSpace(os.Getenv(EnvProvidersConfig)); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "providers.yaml"
	}
	return filepath.Join(home, ".clip-whisper", "providers.yaml")
}

// LoadProvidersIfPresent parses the config file at path. A missing file yields
// an empty configuration, not an error.
func LoadProvidersIfPresent(path string) (*ProvidersConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &ProvidersConfig{Providers: map[string]provider.Settings{}}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ProvidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]provider.Settings{}
	}

	cfg.expandEnvironmentVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// SettingsFor returns the configured settings for a provider, or the zero
// value when the provider has no file entry.
func (c *ProvidersConfig) SettingsFor(name string) provider.Settings {
	if c == nil {
		return provider.Settings{}
	}
	return c.Providers[name]
}

// Resolve returns the provider to use: the explicit request first, then the
// file's default_provider, then the built-in default.
func (c *ProvidersConfig) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c != nil && c.DefaultProvider != "" {
		return c.DefaultProvider
	}
	return provider.Default
}

// MergedSettings returns the file settings for a provider with the API key
// falling back to the provider's environment variable.
func (c *ProvidersConfig) MergedSettings(info provider.Info) provider.Settings {
	settings := c.SettingsFor(info.Name)
	if settings.APIKey == "" {
		settings.APIKey = APIKey(info.EnvKey)
	}
	return settings
}

// expandEnvironmentVariables expands ${VAR} references in string fields.
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for name, settings := range c.Providers {
		settings.APIKey = expandEnv(settings.APIKey)
		settings.BaseURL = expandEnv(settings.BaseURL)
		settings.Model = expandEnv(settings.Model)
		settings.Language = expandEnv(settings.Language)
		settings.Prompt = expandEnv(settings.Prompt)
		c.Providers[name] = settings
	}
}

func expandEnv(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}"))
	}
	return value
}

// Validate checks internal consistency of the file. Provider names are only
// checked against the registry at command level, after provider packages have
// registered themselves.
func (c *ProvidersConfig) Validate() error {
	if c.DefaultProvider != "" && len(c.Providers) > 0 {
		if _, ok := c.Providers[c.DefaultProvider]; !ok {
			return fmt.Errorf("default provider '%s' has no providers entry", c.DefaultProvider)
		}
	}
	return nil
}
