package loaders

import (
	"context"
	"encoding/xml"
	"fmt"
	"regexp"

	"github.com/jmfajardod/marvin/pkg/documents"
	"github.com/jmfajardod/marvin/pkg/html2text"
)

// SitemapLoader walks one or more sitemap.xml files (plain url sets and
// nested sitemap indexes) and loads every page that passes the include/
// exclude filters.
type SitemapLoader struct {
	sitemapURLs []string
	include     []*regexp.Regexp
	exclude     []*regexp.Regexp
	fetcher     *Fetcher
	parser      html2text.Parser
	logger      Logger
}

// SitemapOption customizes a SitemapLoader.
type SitemapOption func(*SitemapLoader)

// WithInclude keeps only page URLs matching at least one pattern.
func WithInclude(patterns ...*regexp.Regexp) SitemapOption {
	return func(l *SitemapLoader) { l.include = patterns }
}

// WithExclude drops page URLs matching any pattern. Exclusion wins over
// inclusion.
func WithExclude(patterns ...*regexp.Regexp) SitemapOption {
	return func(l *SitemapLoader) { l.exclude = patterns }
}

func NewSitemapLoader(sitemapURLs []string, fetcher *Fetcher, parser html2text.Parser, logger Logger, opts ...SitemapOption) *SitemapLoader {
	l := &SitemapLoader{
		sitemapURLs: sitemapURLs,
		fetcher:     fetcher,
		parser:      parser,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *SitemapLoader) Name() string { return "sitemap" }

func (l *SitemapLoader) Load(ctx context.Context) ([]documents.Document, error) {
	pages := NewHTMLLoader(nil, l.fetcher, l.parser, l.logger)

	var docs []documents.Document
	for _, sitemapURL := range l.sitemapURLs {
		urls, err := l.collectPageURLs(ctx, sitemapURL)
		if err != nil {
			return nil, err
		}

		l.logger.Info("Sitemap resolved", nil, map[string]interface{}{
			"sitemap": sitemapURL,
			"pages":   len(urls),
		})

		for _, url := range urls {
			doc, err := pages.loadPage(ctx, url)
			if err != nil {
				// One broken page must not sink the whole sitemap.
				l.logger.Warn("Skipping page", err, map[string]interface{}{"url": url})
				continue
			}
			doc.Metadata.Source = l.Name()
			if doc.Text != "" {
				docs = append(docs, doc)
			}
		}
	}
	return docs, nil
}

// sitemapXML covers both <urlset> and <sitemapindex> documents; only the
// tags we read are mapped.
type sitemapXML struct {
	XMLName  xml.Name `xml:""`
	URLs     []locEntry `xml:"url"`
	Sitemaps []locEntry `xml:"sitemap"`
}

type locEntry struct {
	Loc string `xml:"loc"`
}

// collectPageURLs expands a sitemap (recursing through nested indexes)
// into the filtered list of page URLs.
func (l *SitemapLoader) collectPageURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	body, err := l.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	var parsed sitemapXML
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("loaders: parse sitemap %s: %w", sitemapURL, err)
	}

	var urls []string
	for _, entry := range parsed.URLs {
		if l.accept(entry.Loc) {
			urls = append(urls, entry.Loc)
		}
	}
	for _, nested := range parsed.Sitemaps {
		nestedURLs, err := l.collectPageURLs(ctx, nested.Loc)
		if err != nil {
			return nil, err
		}
		urls = append(urls, nestedURLs...)
	}
	return urls, nil
}

func (l *SitemapLoader) accept(url string) bool {
	if url == "" {
		return false
	}
	for _, pattern := range l.exclude {
		if pattern.MatchString(url) {
			return false
		}
	}
	if len(l.include) == 0 {
		return true
	}
	for _, pattern := range l.include {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}
