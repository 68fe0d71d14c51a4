package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "clip-whisper/internal/api/errors"
	"clip-whisper/internal/api/v1/dto"
)

func TestProviders_List(t *testing.T) {
	providers := &stubProviderService{
		resp: &dto.ListProvidersResponse{
			Providers: []dto.ProviderResponse{
				{Name: "elevenlabs", DisplayName: "ElevenLabs", Configured: false},
				{Name: "openai", DisplayName: "OpenAI Whisper", DefaultModel: "whisper-1", Default: true, Configured: true},
			},
			Count: 2,
		},
	}
	router := newTestRouter(&stubTranscriptionService{}, providers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListProvidersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "openai", resp.Providers[1].Name)
	assert.True(t, resp.Providers[1].Default)
}

func TestProviders_ListError(t *testing.T) {
	providers := &stubProviderService{err: apierrors.NewInternalError("registry unavailable")}
	router := newTestRouter(&stubTranscriptionService{}, providers)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeAPIError(t, w.Body)
	assert.Equal(t, apierrors.KindInternal, apiErr.Kind)
}
