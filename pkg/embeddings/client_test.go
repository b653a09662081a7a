package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, endpoint string, batchSize int) *Client {
	t.Helper()
	client, err := NewClient(&Config{
		Endpoint:     endpoint,
		APIKey:       "test-key",
		Model:        "text-embedding-ada-002",
		Dimensions:   3,
		BatchSize:    batchSize,
		HTTPTimeoutS: 5,
	})
	require.NoError(t, err)
	return client
}

func embeddingsHandler(t *testing.T, calls *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		type datum struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		}
		data := make([]datum, len(req.Input))
		for i := range req.Input {
			data[i] = datum{Index: i, Embedding: []float32{float32(i), 0, 1}}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}
}

func TestCreateEmbeddingsSingleBatch(t *testing.T) {
	var calls int
	srv := httptest.NewServer(embeddingsHandler(t, &calls))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 10)
	vectors, err := client.CreateEmbeddings(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []float32{0, 0, 1}, vectors[0])
	assert.Equal(t, []float32{1, 0, 1}, vectors[1])
}

func TestCreateEmbeddingsSplitsBatches(t *testing.T) {
	var calls int
	srv := httptest.NewServer(embeddingsHandler(t, &calls))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 2)
	vectors, err := client.CreateEmbeddings(context.Background(), []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	assert.Len(t, vectors, 5)
	assert.Equal(t, 3, calls)
}

func TestCreateEmbeddingsEmptyInput(t *testing.T) {
	client := newTestClient(t, "http://localhost:0", 2)
	_, err := client.CreateEmbeddings(context.Background(), nil)
	assert.Error(t, err)
}

func TestCreateEmbeddingsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 10)
	_, err := client.CreateEmbeddings(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Endpoint: "https://api.openai.com/v1"}
	assert.Error(t, cfg.Validate())
	cfg.APIKey = "k"
	assert.NoError(t, cfg.Validate())
}
