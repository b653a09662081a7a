package vectorstore

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/jmfajardod/marvin/pkg/documents"
)

// Embedder is the narrow slice of the embeddings client the store needs.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// SearchResult is one similarity hit with its indexed payload.
type SearchResult struct {
	ID       string
	Score    float32
	Text     string
	Link     string
	Title    string
	Keywords []string
}

// DocumentStore persists document excerpts as vectors in a Qdrant
// collection. It embeds text through the Embedder on every Add and Query;
// similarity search itself is Qdrant's business.
type DocumentStore struct {
	client   *Client
	embedder Embedder
	logger   Logger
}

// NewDocumentStore initializes the store and makes sure the target
// collection exists.
func NewDocumentStore(client *Client, embedder Embedder, logger Logger) (*DocumentStore, error) {
	store := &DocumentStore{client: client, embedder: embedder, logger: logger}

	if err := store.EnsureCollection(context.Background()); err != nil {
		return nil, fmt.Errorf("vectorstore: failed to ensure collection: %w", err)
	}

	logger.Info("Document store ready", nil, map[string]interface{}{
		"collection": client.cfg.Collection,
	})
	return store, nil
}

// Collection returns the name of the backing collection.
func (s *DocumentStore) Collection() string { return s.client.cfg.Collection }

// EnsureCollection creates the collection if it is missing.
func (s *DocumentStore) EnsureCollection(ctx context.Context) error {
	exists, err := s.client.api.CollectionExists(ctx, s.client.cfg.Collection)
	if err != nil {
		return fmt.Errorf("vectorstore: collection lookup failed: %w", err)
	}
	if exists {
		return nil
	}

	s.logger.Info("Creating collection", nil, map[string]interface{}{
		"collection": s.client.cfg.Collection,
		"dimensions": s.embedder.Dimensions(),
	})

	return s.client.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.client.cfg.Collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(s.embedder.Dimensions()),
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

// Add embeds the documents and upserts them. Stable document IDs make the
// operation idempotent across pipeline runs. Returns how many documents
// were written.
func (s *DocumentStore) Add(ctx context.Context, docs []documents.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}

	vectors, err := s.embedder.CreateEmbeddings(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("vectorstore: embedding failed: %w", err)
	}
	if len(vectors) != len(docs) {
		return 0, fmt.Errorf("vectorstore: got %d vectors for %d documents", len(vectors), len(docs))
	}

	points := make([]*qdrant.PointStruct, 0, len(docs))
	for i, doc := range docs {
		keywords := make([]any, len(doc.Keywords))
		for j, kw := range doc.Keywords {
			keywords[j] = kw
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointUUID(doc.ID)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":      doc.Text,
				"link":      doc.Metadata.Link,
				"title":     doc.Metadata.Title,
				"source":    doc.Metadata.Source,
				"parent_id": doc.ParentID,
				"topic":     doc.TopicName,
				"keywords":  keywords,
			}),
		})
	}

	_, err = s.client.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.client.cfg.Collection,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("vectorstore: upsert failed: %w", err)
	}

	s.logger.Info("Inserted documents", nil, map[string]interface{}{
		"collection": s.client.cfg.Collection,
		"documents":  len(docs),
	})
	return len(docs), nil
}

// Query embeds the text and runs a similarity search.
func (s *DocumentStore) Query(ctx context.Context, text string, topK int) ([]SearchResult, error) {
	vectors, err := s.embedder.CreateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("vectorstore: embedding failed: %w", err)
	}

	hits, err := s.client.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.client.cfg.Collection,
		Query:          qdrant.NewQuery(vectors[0]...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("vectorstore: search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, scoredPointToResult(hit))
	}
	return results, nil
}

// Delete removes documents by their document IDs.
func (s *DocumentStore) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewID(pointUUID(id)))
	}

	_, err := s.client.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.client.cfg.Collection,
		Points:         qdrant.NewPointsSelector(pointIDs...),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("vectorstore: delete failed: %w", err)
	}
	return nil
}

// Reset drops and recreates the collection. The refresh flow uses it to
// wipe stale knowledge before re-indexing.
func (s *DocumentStore) Reset(ctx context.Context) error {
	if err := s.client.api.DeleteCollection(ctx, s.client.cfg.Collection); err != nil {
		return fmt.Errorf("vectorstore: drop collection failed: %w", err)
	}
	s.logger.Info("Collection wiped", nil, map[string]interface{}{
		"collection": s.client.cfg.Collection,
	})
	return s.EnsureCollection(ctx)
}

func scoredPointToResult(hit *qdrant.ScoredPoint) SearchResult {
	result := SearchResult{
		ID:    hit.GetId().GetUuid(),
		Score: hit.GetScore(),
	}

	payload := hit.GetPayload()
	if payload == nil {
		return result
	}

	result.Text = payload["text"].GetStringValue()
	result.Link = payload["link"].GetStringValue()
	result.Title = payload["title"].GetStringValue()

	if list := payload["keywords"].GetListValue(); list != nil {
		for _, v := range list.GetValues() {
			if kw := v.GetStringValue(); kw != "" {
				result.Keywords = append(result.Keywords, kw)
			}
		}
	}
	return result
}
