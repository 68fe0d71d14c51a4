package dto

// ProviderResponse represents a registered provider in API responses.
// Configured reports whether the provider's API key is available; the key
// itself is never returned.
type ProviderResponse struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	DefaultModel string `json:"default_model,omitempty"`
	EnvKey       string `json:"env_key,omitempty"`
	Default      bool   `json:"default"`
	Configured   bool   `json:"configured"`
}

// ListProvidersResponse represents the provider list payload
type ListProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Count     int                `json:"count"`
}
