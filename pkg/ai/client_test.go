package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/pkg/ai"
)

func newTestClient(handler http.HandlerFunc) (*ai.Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := ai.NewClient()
	client.BaseURL = srv.URL
	return client, srv
}

func TestGenerateReturnsFirstChoice(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"A concise summary."}}]}`))
	})
	defer srv.Close()

	out, err := client.Generate(context.Background(), "sk-test", "Write a summary")
	require.NoError(t, err)

	assert.Equal(t, "A concise summary.", out)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "Write a summary", msg["content"])
}

func TestGenerateWithoutKey(t *testing.T) {
	client := ai.NewClient()

	_, err := client.Generate(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, ai.ErrCredentialMissing)
}

func TestGenerateSurfacesProviderError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API key"}}`))
	})
	defer srv.Close()

	_, err := client.Generate(context.Background(), "sk-bad", "prompt")
	require.Error(t, err)

	var apiErr *ai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid API key", apiErr.Message)
	assert.Equal(t, "API request failed (401): Invalid API key", apiErr.Error())
}

func TestGenerateNonJSONErrorBodyKeepsStatusText(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})
	defer srv.Close()

	_, err := client.Generate(context.Background(), "sk-test", "prompt")

	var apiErr *ai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestGenerateNetworkFailure(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from here on

	_, err := client.Generate(context.Background(), "sk-test", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling completion endpoint")

	var apiErr *ai.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestGenerateEmptyChoices(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	_, err := client.Generate(context.Background(), "sk-test", "prompt")
	assert.EqualError(t, err, "completion response contained no choices")
}
