package loaders

import (
	"regexp"

	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/artifacts"
	"github.com/jmfajardod/marvin/pkg/html2text"
	"github.com/jmfajardod/marvin/pkg/logger"
	"github.com/jmfajardod/marvin/pkg/settings"
)

// FXModule defines the Fx module for the document loaders.
//
// The module provides the shared Fetcher and the default loader set used
// by the knowledge-refresh flow. The artifacts store is optional; when it
// is absent the fetcher goes straight to the network.
var FXModule = fx.Module("loaders",
	fx.Provide(
		newFetcherFromSettings,
		NewDefaultLoaders,
	),
)

func newFetcherFromSettings(cache *artifacts.Store, s *settings.Settings) *Fetcher {
	return NewFetcher(cache, s.Pipeline.UserAgent)
}

// NewDefaultLoaders builds the documentation sources indexed by the
// refresh flow: the Prefect docs and marketing sitemaps, the Prefect
// Cloud OpenAPI spec, a handful of standalone pages and two GitHub
// repositories.
func NewDefaultLoaders(fetcher *Fetcher, log *logger.Logger) []Loader {
	parser := html2text.NewParser()

	return []Loader{
		NewSitemapLoader(
			[]string{"https://docs.prefect.io/sitemap.xml"},
			fetcher, parser, log,
			WithExclude(regexp.MustCompile(`api-ref`)),
		),
		NewOpenAPISpecLoader(
			"https://api.prefect.cloud/api/openapi.json",
			"https://app.prefect.cloud/api",
			fetcher, log,
		),
		NewHTMLLoader(
			[]string{
				"https://prefect.io/about/company/",
				"https://prefect.io/security/overview/",
				"https://prefect.io/security/sub-processors/",
				"https://prefect.io/security/gdpr-compliance/",
				"https://prefect.io/security/bug-bounty-program/",
			},
			fetcher, parser, log,
		),
		NewGitHubRepoLoader(
			"prefecthq/prefect",
			[]string{"README.md", "RELEASE-NOTES.md"},
			[]string{
				"tests/**/*",
				"docs/**/*",
				"**/migrations/**/*",
				"**/__init__.py",
				"**/_version.py",
			},
			log,
		),
		NewGitHubRepoLoader(
			"prefecthq/prefect-recipes",
			[]string{"flows-advanced/**/*.py", "README.md"},
			nil,
			log,
		),
		NewSitemapLoader(
			[]string{"https://www.prefect.io/sitemap.xml"},
			fetcher, parser, log,
			WithInclude(regexp.MustCompile(`prefect\.io/guide/case-studies/.+`)),
		),
	}
}
