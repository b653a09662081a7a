package chatcompletion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFor(t *testing.T, provider Provider, base string) *ProviderSettings {
	t.Helper()
	opts := []Option{
		WithEnviron(emptyEnv),
		WithAPIKey("test-key"),
		WithAPIBase(base),
	}
	if provider.EndpointBased {
		opts = append(opts, WithDeploymentName("gpt-4"))
	}
	ps, err := NewProviderSettings(provider, opts...)
	require.NoError(t, err)
	return ps
}

func okResponse() VendorResponse {
	return VendorResponse{
		ID: "chatcmpl-1",
		Choices: []VendorChoice{
			{Message: &Message{Role: RoleAssistant, Content: "ok"}},
		},
	}
}

func TestHTTPClientAzureRequestShape(t *testing.T) {
	var gotPath, gotVersion, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotVersion = r.URL.Query().Get("api-version")
		gotKey = r.Header.Get("api-key")
		_ = json.NewEncoder(w).Encode(okResponse())
	}))
	defer srv.Close()

	client := NewHTTPClient(newSettingsFor(t, AzureOpenAI, srv.URL))
	_, err := client.Invoke(context.Background(), Payload{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/openai/deployments/gpt-4/chat/completions", gotPath)
	assert.Equal(t, "2023-07-01-preview", gotVersion)
	assert.Equal(t, "test-key", gotKey)
}

func TestHTTPClientOpenAIRequestShape(t *testing.T) {
	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(okResponse())
	}))
	defer srv.Close()

	client := NewHTTPClient(newSettingsFor(t, OpenAI, srv.URL))
	_, err := client.Invoke(context.Background(), Payload{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestHTTPClientSurfacesVendorErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(newSettingsFor(t, OpenAI, srv.URL))
	_, err := client.Invoke(context.Background(), Payload{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestHTTPClientPlainStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(newSettingsFor(t, OpenAI, srv.URL))
	_, err := client.Invoke(context.Background(), Payload{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
