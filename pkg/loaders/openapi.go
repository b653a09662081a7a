package loaders

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jmfajardod/marvin/pkg/documents"
)

// OpenAPISpecLoader turns a hosted OpenAPI spec into one document per
// operation, so each endpoint is retrievable on its own.
type OpenAPISpecLoader struct {
	specURL   string
	apiDocURL string
	fetcher   *Fetcher
	logger    Logger
}

// NewOpenAPISpecLoader loads the spec at specURL; apiDocURL is recorded
// as the link of every produced document.
func NewOpenAPISpecLoader(specURL, apiDocURL string, fetcher *Fetcher, logger Logger) *OpenAPISpecLoader {
	return &OpenAPISpecLoader{
		specURL:   specURL,
		apiDocURL: apiDocURL,
		fetcher:   fetcher,
		logger:    logger,
	}
}

func (l *OpenAPISpecLoader) Name() string { return "openapi" }

func (l *OpenAPISpecLoader) Load(ctx context.Context) ([]documents.Document, error) {
	body, err := l.fetcher.Fetch(ctx, l.specURL)
	if err != nil {
		return nil, err
	}

	spec, err := openapi3.NewLoader().LoadFromData(body)
	if err != nil {
		return nil, fmt.Errorf("loaders: parse openapi spec %s: %w", l.specURL, err)
	}

	title := "API"
	if spec.Info != nil && spec.Info.Title != "" {
		title = spec.Info.Title
	}

	paths := spec.Paths.Map()
	pathNames := make([]string, 0, len(paths))
	for name := range paths {
		pathNames = append(pathNames, name)
	}
	sort.Strings(pathNames)

	var docs []documents.Document
	for _, path := range pathNames {
		item := paths[path]
		for _, method := range sortedMethods(item) {
			op := item.Operations()[method]
			docs = append(docs, documents.Document{
				Text: renderOperation(method, path, op),
				Metadata: documents.Metadata{
					Link:   l.apiDocURL,
					Title:  fmt.Sprintf("%s: %s %s", title, method, path),
					Source: l.Name(),
				},
			})
		}
	}

	l.logger.Info("OpenAPI spec loaded", nil, map[string]interface{}{
		"spec":       l.specURL,
		"operations": len(docs),
	})
	return docs, nil
}

func sortedMethods(item *openapi3.PathItem) []string {
	ops := item.Operations()
	methods := make([]string, 0, len(ops))
	for method := range ops {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// renderOperation flattens one endpoint into retrieval-friendly prose.
func renderOperation(method, path string, op *openapi3.Operation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", method, path)

	if op.Summary != "" {
		b.WriteString(op.Summary + "\n")
	}
	if op.Description != "" {
		b.WriteString(op.Description + "\n")
	}

	if len(op.Parameters) > 0 {
		b.WriteString("Parameters:\n")
		for _, ref := range op.Parameters {
			if ref.Value == nil {
				continue
			}
			p := ref.Value
			fmt.Fprintf(&b, "- %s (%s)", p.Name, p.In)
			if p.Description != "" {
				b.WriteString(": " + p.Description)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
