package provider

import (
	"fmt"
	"sort"
	"sync"

	"clip-whisper/internal/app/api"
)

// Default is the provider used when neither flags nor config select one.
const Default = "openai"

// Settings holds per-provider options merged from file config, environment
// and command line flags. Zero values mean "use the provider default".
type Settings struct {
	APIKey         string  `yaml:"api_key" json:"-"`
	BaseURL        string  `yaml:"base_url" json:"base_url,omitempty"`
	Model          string  `yaml:"model" json:"model,omitempty"`
	Language       string  `yaml:"language" json:"language,omitempty"`
	Prompt         string  `yaml:"prompt" json:"prompt,omitempty"`
	ResponseFormat string  `yaml:"response_format" json:"response_format,omitempty"`
	Temperature    float32 `yaml:"temperature" json:"temperature,omitempty"`
	TimeoutSec     int     `yaml:"timeout_sec" json:"timeout_sec,omitempty"`
}

// Info describes a registered provider.
type Info struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	EnvKey       string `json:"env_key"`
	DefaultModel string `json:"default_model"`
}

// Creator builds a Transcriber from merged settings.
type Creator func(settings Settings) (api.Transcriber, error)

type entry struct {
	info    Info
	creator Creator
}

var (
	registry      = make(map[string]entry)
	registryMutex sync.RWMutex
)

// Register registers a provider under info.Name. Provider packages call it
// from init(); importing a provider package for side effects enables it.
func Register(info Info, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[info.Name] = entry{info: info, creator: creator}
}

// Create builds a Transcriber for the named provider.
func Create(name string, settings Settings) (api.Transcriber, error) {
	registryMutex.RLock()
	e, ok := registry[name]
	registryMutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", name)
	}
	return e.creator(settings)
}

// InfoFor returns the metadata registered for the named provider.
func InfoFor(name string) (Info, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	e, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("provider %s not registered", name)
	}
	return e.info, nil
}

// Registered returns all registered provider names, sorted.
func Registered() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
