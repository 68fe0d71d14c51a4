package provider

// Error codes shared by all providers.
const (
	CodeAuthenticationFailed = "authentication_failed"
	CodeRateLimitExceeded    = "rate_limit_exceeded"
	CodeFileTooLarge         = "file_too_large"
	CodeInvalidFile          = "invalid_file"
	CodeNetworkError         = "network_error"
	CodeAPIError             = "api_error"
)

// TranscriptionError represents a provider-specific failure. The message is
// shown to the user verbatim, so providers keep it human readable.
type TranscriptionError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Provider  string `json:"provider"`
	Retryable bool   `json:"retryable"`
}

func (e *TranscriptionError) Error() string {
	return e.Message
}
