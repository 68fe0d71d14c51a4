package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the first .env file found near the
// working directory. A missing file is not an error; keys may already be set
// system-wide. Returns the path that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// APIKey returns the trimmed value of the given environment variable.
func APIKey(envKey string) string {
	return strings.TrimSpace(os.Getenv(envKey))
}

// KeyFormatWarning returns a human readable warning when a configured key does
// not match the provider's usual shape, or "" when it looks fine. The key is
// used either way; the remote API is the authority on validity.
func KeyFormatWarning(envKey, value string) string {
	if value == "" {
		return ""
	}
	switch envKey {
	case "OPENAI_API_KEY":
		if !strings.HasPrefix(value, "sk-") || len(value) < 20 {
			return fmt.Sprintf("%s does not look like an OpenAI key (expected sk- prefix)", envKey)
		}
	case "GEMINI_API_KEY":
		if !strings.HasPrefix(value, "AIza") || len(value) < 30 {
			return fmt.Sprintf("%s does not look like a Gemini key (expected AIza prefix)", envKey)
		}
	}
	return ""
}
