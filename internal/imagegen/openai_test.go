package imagegen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*OpenAIClient, *httptest.Server) {
	server := httptest.NewServer(handler)

	client := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", Model: "test-model"})
	client.url = server.URL
	client.httpClient = server.Client()

	return client, server
}

func TestGenerate_Success(t *testing.T) {
	var captured generationRequest

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created":1,"data":[{"b64_json":"aGVsbG8="}]}`)) //nolint:errcheck // test fixture
	})
	defer server.Close()

	resp, err := client.Generate(context.Background(), Request{
		Prompt: "a red bicycle",
		Size:   "1024x1024",
	})

	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", resp.Base64)
	assert.Equal(t, "test-model", resp.Model)

	assert.Equal(t, "a red bicycle", captured.Prompt)
	assert.Equal(t, "test-model", captured.Model, "default model applied")
	assert.Equal(t, 1, captured.N, "count defaults to one")
	assert.Equal(t, "b64_json", captured.ResponseFormat)
}

func TestGenerate_ExplicitModelWins(t *testing.T) {
	var captured generationRequest

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"data":[{"b64_json":"eA=="}]}`)) //nolint:errcheck // test fixture
	})
	defer server.Close()

	_, err := client.Generate(context.Background(), Request{
		Model:  "other-model",
		Prompt: "cat",
		Size:   "1024x1024",
	})

	require.NoError(t, err)
	assert.Equal(t, "other-model", captured.Model)
}

func TestGenerate_UpstreamErrorCarriesStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream sad`)) //nolint:errcheck // test fixture
	})
	defer server.Close()

	_, err := client.Generate(context.Background(), Request{Prompt: "cat", Size: "1024x1024"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestGenerate_EmptyResultIsError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`)) //nolint:errcheck // test fixture
	})
	defer server.Close()

	_, err := client.Generate(context.Background(), Request{Prompt: "cat", Size: "1024x1024"})

	assert.Error(t, err)
	assert.False(t, errors.As(err, new(*APIError)), "empty result is not an upstream status error")
}
