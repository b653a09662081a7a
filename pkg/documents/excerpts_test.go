package documents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkEmptyInput(t *testing.T) {
	assert.Nil(t, Chunk("", 128, 16))
	assert.Nil(t, Chunk("  \t\n ", 128, 16))
}

func TestChunkShortTextIsSingleChunk(t *testing.T) {
	text := "just a handful of tokens"
	chunks := Chunk(text, 128, 16)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestChunkOverlapSharesTokens(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = string(rune('a' + i))
	}
	chunks := Chunk(strings.Join(words, " "), 10, 4)
	require.True(t, len(chunks) > 1)

	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	// The tail of one chunk is the head of the next.
	assert.Equal(t, first[len(first)-4:], second[:4])
}

func TestChunkClampsExcessiveOverlap(t *testing.T) {
	words := make([]string, 30)
	for i := range words {
		words[i] = "w"
	}
	// overlap >= chunk size would never advance; it must be clamped.
	chunks := Chunk(strings.Join(words, " "), 10, 10)
	assert.True(t, len(chunks) > 1)
}

func TestToExcerptsCarriesMetadataAndOrder(t *testing.T) {
	words := make([]string, 50)
	for i := range words {
		words[i] = "token"
	}
	doc := Document{
		ID:        "parent-1",
		Text:      strings.Join(words, " "),
		Metadata:  Metadata{Title: "Guide", Link: "https://docs.example.com/guide", Source: "sitemap"},
		TopicName: "marvin",
	}

	excerpts, err := ToExcerpts(doc, ExcerptOptions{ChunkTokens: 20, ChunkOverlap: 5})
	require.NoError(t, err)
	require.True(t, len(excerpts) > 1)

	for i, e := range excerpts {
		assert.Equal(t, i, e.Order)
		assert.Equal(t, "parent-1", e.ParentID)
		assert.Equal(t, "marvin", e.TopicName)
		assert.Equal(t, doc.Metadata, e.Metadata)
		assert.Contains(t, e.Text, "excerpt from a document")
		assert.Contains(t, e.Text, "Guide")
		assert.NotEmpty(t, e.ID)
	}
}

func TestToExcerptsAppliesKeywordFunc(t *testing.T) {
	doc := Document{Text: "kubernetes deployment rollout strategies"}

	excerpts, err := ToExcerpts(doc, ExcerptOptions{
		ChunkTokens: 100,
		Keywords:    func(string) []string { return []string{"kubernetes", "rollout"} },
	})
	require.NoError(t, err)
	require.Len(t, excerpts, 1)
	assert.Equal(t, []string{"kubernetes", "rollout"}, excerpts[0].Keywords)
	assert.Contains(t, excerpts[0].Text, "kubernetes, rollout")
}

func TestToExcerptsStableIDs(t *testing.T) {
	doc := Document{
		Text:     "same text every run",
		Metadata: Metadata{Source: "html", Link: "https://example.com"},
	}

	first, err := ToExcerpts(doc, ExcerptOptions{ChunkTokens: 10})
	require.NoError(t, err)
	second, err := ToExcerpts(doc, ExcerptOptions{ChunkTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestToExcerptsRejectsBadChunkSize(t *testing.T) {
	_, err := ToExcerpts(Document{Text: "x"}, ExcerptOptions{ChunkTokens: 0})
	assert.Error(t, err)
}
