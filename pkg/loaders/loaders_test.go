package loaders

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfajardod/marvin/pkg/html2text"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

func TestFetcher(t *testing.T) {
	t.Run("sets the configured user agent", func(t *testing.T) {
		var gotAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			fmt.Fprint(w, "ok")
		}))
		defer srv.Close()

		f := NewFetcher(nil, "marvin-test/1.0")
		body, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, "marvin-test/1.0", gotAgent)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := NewFetcher(nil, "")
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "http 404")
	})
}

func TestHTMLLoader(t *testing.T) {
	page := `<html><head><title>Security Overview</title></head>
<body><nav>menu</nav><h1>Security</h1><p>We take it seriously.</p></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/security":
			fmt.Fprint(w, page)
		case "/empty":
			fmt.Fprint(w, `<html><body><script>nope()</script></body></html>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	loader := NewHTMLLoader(
		[]string{srv.URL + "/security", srv.URL + "/empty"},
		NewFetcher(nil, ""), html2text.NewParser(), nopLogger{},
	)

	docs, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1, "pages without text are dropped")
	assert.Equal(t, "Security Overview", docs[0].Metadata.Title)
	assert.Equal(t, srv.URL+"/security", docs[0].Metadata.Link)
	assert.Equal(t, "html", docs[0].Metadata.Source)
	assert.Contains(t, docs[0].Text, "We take it seriously.")
	assert.NotContains(t, docs[0].Text, "menu")
}

func TestSitemapLoader(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sitemap.xml":
			fmt.Fprintf(w, `<sitemapindex>
  <sitemap><loc>%s/pages.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
		case "/pages.xml":
			fmt.Fprintf(w, `<urlset>
  <url><loc>%s/guide/intro</loc></url>
  <url><loc>%s/api-ref/thing</loc></url>
  <url><loc>%s/guide/broken</loc></url>
</urlset>`, srv.URL, srv.URL, srv.URL)
		case "/guide/intro":
			fmt.Fprint(w, `<html><head><title>Intro</title></head><body><p>Welcome.</p></body></html>`)
		case "/guide/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	loader := NewSitemapLoader(
		[]string{srv.URL + "/sitemap.xml"},
		NewFetcher(nil, ""), html2text.NewParser(), nopLogger{},
		WithExclude(regexp.MustCompile(`api-ref`)),
	)

	docs, err := loader.Load(context.Background())

	require.NoError(t, err, "a broken page must not fail the sitemap")
	require.Len(t, docs, 1)
	assert.Equal(t, "Intro", docs[0].Metadata.Title)
	assert.Equal(t, "sitemap", docs[0].Metadata.Source)
}

func TestSitemapLoaderInclude(t *testing.T) {
	l := NewSitemapLoader(nil, nil, nil, nopLogger{},
		WithInclude(regexp.MustCompile(`/case-studies/.+`)),
		WithExclude(regexp.MustCompile(`draft`)),
	)

	assert.True(t, l.accept("https://example.com/case-studies/acme"))
	assert.False(t, l.accept("https://example.com/blog/post"))
	assert.False(t, l.accept("https://example.com/case-studies/draft"), "exclusion wins")
	assert.False(t, l.accept(""))
}

func TestOpenAPISpecLoader(t *testing.T) {
	spec := `{
  "openapi": "3.0.0",
  "info": {"title": "Orchestration API", "version": "1.0"},
  "paths": {
    "/flows": {
      "get": {
        "summary": "List flows",
        "parameters": [
          {"name": "limit", "in": "query", "description": "Page size", "schema": {"type": "integer"}}
        ],
        "responses": {"200": {"description": "ok"}}
      },
      "post": {
        "summary": "Create a flow",
        "responses": {"201": {"description": "created"}}
      }
    },
    "/deployments": {
      "get": {
        "summary": "List deployments",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, spec)
	}))
	defer srv.Close()

	loader := NewOpenAPISpecLoader(srv.URL, "https://docs.example.com/api", NewFetcher(nil, ""), nopLogger{})

	docs, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 3, "one document per operation")

	// Paths sorted, then methods sorted within a path.
	assert.Equal(t, "Orchestration API: GET /deployments", docs[0].Metadata.Title)
	assert.Equal(t, "Orchestration API: GET /flows", docs[1].Metadata.Title)
	assert.Equal(t, "Orchestration API: POST /flows", docs[2].Metadata.Title)

	assert.Contains(t, docs[1].Text, "List flows")
	assert.Contains(t, docs[1].Text, "- limit (query): Page size")
	for _, doc := range docs {
		assert.Equal(t, "https://docs.example.com/api", doc.Metadata.Link)
		assert.Equal(t, "openapi", doc.Metadata.Source)
	}
}

func TestMatchGlob(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"README.md", "README.md", true},
		{"README.md", "docs/README.md", false},
		{"*.md", "README.md", true},
		{"*.md", "src/main.go", false},
		{"docs/**/*", "docs/a/b/c.md", true},
		{"docs/**/*", "src/a.go", false},
		{"**/__init__.py", "__init__.py", true},
		{"**/__init__.py", "pkg/deep/__init__.py", true},
		{"**/migrations/**/*", "app/migrations/0001.py", true},
		{"**/migrations/**/*", "app/models.py", false},
		{"flows-advanced/**/*.py", "flows-advanced/etl/run.py", true},
		{"flows-advanced/**/*.py", "flows-advanced/etl/run.md", false},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+" vs "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matchGlob(tc.pattern, tc.name))
		})
	}
}

func TestGitHubRepoLoaderAccept(t *testing.T) {
	l := NewGitHubRepoLoader("acme/widgets",
		[]string{"README.md", "docs/**/*.md"},
		[]string{"docs/internal/**/*"},
		nopLogger{},
	)

	assert.True(t, l.accept("README.md"))
	assert.True(t, l.accept("docs/guide/setup.md"))
	assert.False(t, l.accept("docs/internal/secrets.md"), "exclusion wins")
	assert.False(t, l.accept("main.go"))

	everything := NewGitHubRepoLoader("acme/widgets", nil, nil, nopLogger{})
	assert.True(t, everything.accept("anything/at/all.txt"))
}
