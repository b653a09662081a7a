package loaders

import (
	"context"
	"fmt"

	"github.com/jmfajardod/marvin/pkg/documents"
	"github.com/jmfajardod/marvin/pkg/html2text"
)

// HTMLLoader fetches a fixed list of pages and yields one document per
// page with its readable text extracted.
type HTMLLoader struct {
	urls    []string
	fetcher *Fetcher
	parser  html2text.Parser
	logger  Logger
}

func NewHTMLLoader(urls []string, fetcher *Fetcher, parser html2text.Parser, logger Logger) *HTMLLoader {
	return &HTMLLoader{
		urls:    urls,
		fetcher: fetcher,
		parser:  parser,
		logger:  logger,
	}
}

func (l *HTMLLoader) Name() string { return "html" }

func (l *HTMLLoader) Load(ctx context.Context) ([]documents.Document, error) {
	docs := make([]documents.Document, 0, len(l.urls))
	for _, url := range l.urls {
		doc, err := l.loadPage(ctx, url)
		if err != nil {
			return nil, err
		}
		if doc.Text == "" {
			l.logger.Warn("Page yielded no text", nil, map[string]interface{}{"url": url})
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (l *HTMLLoader) loadPage(ctx context.Context, url string) (documents.Document, error) {
	body, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return documents.Document{}, err
	}

	raw := string(body)
	text, err := l.parser.Parse(raw)
	if err != nil {
		return documents.Document{}, fmt.Errorf("loaders: extract %s: %w", url, err)
	}

	return documents.Document{
		Text: text,
		Metadata: documents.Metadata{
			Link:   url,
			Title:  html2text.Title(raw),
			Source: l.Name(),
		},
	}, nil
}
