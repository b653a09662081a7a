package vectorstore

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/jmfajardod/marvin/pkg/documents"
	"github.com/jmfajardod/marvin/pkg/logger"
)

// hashEmbedder is a deterministic stand-in for the embeddings client so
// the integration test does not need a live embeddings API.
type hashEmbedder struct {
	dims int
}

func (e *hashEmbedder) Dimensions() int { return e.dims }

func (e *hashEmbedder) CreateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, e.dims)
		for j, r := range text {
			vec[j%e.dims] += float32(r) / 1000
		}
		out[i] = vec
	}
	return out, nil
}

// setupQdrantContainer starts a Qdrant container for testing.
func setupQdrantContainer(ctx context.Context, t *testing.T) (string, int) {
	t.Helper()

	port, err := getFreePort()
	require.NoError(t, err)

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	instance, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = instance.Terminate(context.Background()) })

	host, err := instance.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := instance.MappedPort(ctx, "6334")
	require.NoError(t, err)

	return host, mappedPort.Int()
}

// getFreePort gets a free port from the OS.
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer addr.Close()
	return addr.Addr().(*net.TCPAddr).Port, nil
}

func TestDocumentStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	host, port := setupQdrantContainer(ctx, t)

	log := &logger.Logger{Zap: zap.NewNop()}
	cfg := &Config{
		Host:       host,
		Port:       port,
		Collection: "marvin_test",
	}

	client, err := NewClient(cfg, log)
	require.NoError(t, err)
	defer client.Close()

	store, err := NewDocumentStore(client, &hashEmbedder{dims: 8}, log)
	require.NoError(t, err)

	docs := []documents.Document{
		{
			ID:   "11111111111111111111111111111111",
			Text: "Deployments roll out new versions of a service.",
			Metadata: documents.Metadata{
				Link:  "https://docs.example.com/deployments",
				Title: "Deployments",
			},
			Keywords: []string{"deployments", "rollout"},
		},
		{
			ID:   "22222222222222222222222222222222",
			Text: "Caching keeps frequently used results close to the reader.",
			Metadata: documents.Metadata{
				Link:  "https://docs.example.com/caching",
				Title: "Caching",
			},
		},
	}

	t.Run("AddAndQuery", func(t *testing.T) {
		n, err := store.Add(ctx, docs)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		results, err := store.Query(ctx, "Deployments roll out new versions of a service.", 2)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.True(t, strings.Contains(results[0].Text, "Deployments"))
		assert.Equal(t, "https://docs.example.com/deployments", results[0].Link)
		assert.Contains(t, results[0].Keywords, "rollout")
	})

	t.Run("AddIsIdempotent", func(t *testing.T) {
		_, err := store.Add(ctx, docs)
		require.NoError(t, err)

		results, err := store.Query(ctx, "caching results", 10)
		require.NoError(t, err)
		assert.Len(t, results, 2, "re-adding the same documents must upsert, not duplicate")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, []string{docs[0].ID}))

		results, err := store.Query(ctx, "anything", 10)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("Reset", func(t *testing.T) {
		require.NoError(t, store.Reset(ctx))

		results, err := store.Query(ctx, "anything", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("AddEmptyIsNoop", func(t *testing.T) {
		n, err := store.Add(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
