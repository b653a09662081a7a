package documents

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// KeywordFunc extracts the salient keywords of a text. Keyword extraction
// is an opaque capability; pkg/keywords supplies the default.
type KeywordFunc func(text string) []string

// ExcerptOptions controls how a document is split.
type ExcerptOptions struct {
	// ChunkTokens is the window size in whitespace tokens.
	ChunkTokens int

	// ChunkOverlap is how many tokens consecutive excerpts share.
	ChunkOverlap int

	// Keywords annotates every excerpt; nil skips keyword extraction.
	Keywords KeywordFunc
}

// Chunk splits text into windows of at most chunkTokens whitespace tokens,
// advancing by chunkTokens-overlap so neighbouring chunks share overlap
// tokens. Empty input yields nil; text that fits in one window is returned
// whole. An overlap >= chunkTokens is clamped to chunkTokens-1.
func Chunk(text string, chunkTokens, overlap int) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	if overlap >= chunkTokens {
		overlap = chunkTokens - 1
	}

	if len(tokens) <= chunkTokens {
		return []string{strings.Join(tokens, " ")}
	}

	stride := chunkTokens - overlap
	var chunks []string

	for start := 0; start < len(tokens); start += stride {
		end := start + chunkTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, strings.Join(tokens[start:end], " "))
		if end == len(tokens) {
			break
		}
	}

	return chunks
}

// ToExcerpts splits a document into excerpt documents carrying a header
// with the parent's metadata and the excerpt's keywords, so the retrieval
// layer can show where a hit came from without a second lookup.
func ToExcerpts(doc Document, opts ExcerptOptions) ([]Document, error) {
	if opts.ChunkTokens <= 0 {
		return nil, fmt.Errorf("documents: chunk size must be positive, got %d", opts.ChunkTokens)
	}

	chunks := Chunk(doc.Text, opts.ChunkTokens, opts.ChunkOverlap)
	excerpts := make([]Document, 0, len(chunks))

	for i, chunk := range chunks {
		var keywords []string
		if opts.Keywords != nil {
			keywords = opts.Keywords(chunk)
		}

		text := renderExcerpt(doc, chunk, keywords)
		excerpts = append(excerpts, Document{
			ID:        excerptID(doc, i, chunk),
			Text:      text,
			Metadata:  doc.Metadata,
			ParentID:  doc.ID,
			TopicName: doc.TopicName,
			Tokens:    len(strings.Fields(text)),
			Order:     i,
			Keywords:  keywords,
		})
	}

	return excerpts, nil
}

// renderExcerpt prepends the provenance header used for every indexed excerpt.
func renderExcerpt(doc Document, chunk string, keywords []string) string {
	var b strings.Builder
	b.WriteString("The following is an excerpt from a document")
	if doc.Metadata.Title != "" {
		b.WriteString(fmt.Sprintf(" titled %q", doc.Metadata.Title))
	}
	if doc.Metadata.Link != "" {
		b.WriteString(" at " + doc.Metadata.Link)
	}
	b.WriteString("\n")
	if len(keywords) > 0 {
		b.WriteString("# Excerpt's keywords: " + strings.Join(keywords, ", ") + "\n")
	}
	b.WriteString("---\n")
	b.WriteString(chunk)
	return b.String()
}

// excerptID derives a stable identifier so re-running the pipeline over
// unchanged sources upserts instead of duplicating.
func excerptID(doc Document, order int, chunk string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%s", doc.Metadata.Source, doc.Metadata.Link, order, chunk)
	return hex.EncodeToString(h.Sum(nil))[:32]
}
