package loaders

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmfajardod/marvin/pkg/documents"
)

// GitHubRepoLoader shallow-clones a repository and yields one document
// per file matched by the include globs and not struck by the exclude
// globs. Glob patterns support ** for any number of path segments.
type GitHubRepoLoader struct {
	repo         string // "owner/name"
	includeGlobs []string
	excludeGlobs []string
	logger       Logger
}

func NewGitHubRepoLoader(repo string, includeGlobs, excludeGlobs []string, logger Logger) *GitHubRepoLoader {
	return &GitHubRepoLoader{
		repo:         repo,
		includeGlobs: includeGlobs,
		excludeGlobs: excludeGlobs,
		logger:       logger,
	}
}

func (l *GitHubRepoLoader) Name() string { return "github" }

func (l *GitHubRepoLoader) Load(ctx context.Context) ([]documents.Document, error) {
	dir, err := os.MkdirTemp("", "marvin-github-*")
	if err != nil {
		return nil, fmt.Errorf("loaders: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	cloneURL := fmt.Sprintf("https://github.com/%s.git", l.repo)
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", cloneURL, dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("loaders: clone %s: %w: %s", l.repo, err, strings.TrimSpace(string(out)))
	}

	var docs []documents.Document
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !l.accept(rel) {
			return nil
		}

		body, err := os.ReadFile(p)
		if err != nil {
			return err
		}

		docs = append(docs, documents.Document{
			Text: string(body),
			Metadata: documents.Metadata{
				Link:   fmt.Sprintf("https://github.com/%s/blob/main/%s", l.repo, rel),
				Title:  rel,
				Source: l.Name(),
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loaders: walk %s: %w", l.repo, err)
	}

	l.logger.Info("Repository loaded", nil, map[string]interface{}{
		"repo":  l.repo,
		"files": len(docs),
	})
	return docs, nil
}

func (l *GitHubRepoLoader) accept(rel string) bool {
	for _, pattern := range l.excludeGlobs {
		if matchGlob(pattern, rel) {
			return false
		}
	}
	if len(l.includeGlobs) == 0 {
		return true
	}
	for _, pattern := range l.includeGlobs {
		if matchGlob(pattern, rel) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a pattern where "**"
// spans any number of segments and the remaining segments follow
// path.Match rules.
func matchGlob(pattern, name string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

func matchSegments(pattern, name []string) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}

	if pattern[0] == "**" {
		// Try consuming zero or more name segments.
		for skip := 0; skip <= len(name); skip++ {
			if matchSegments(pattern[1:], name[skip:]) {
				return true
			}
		}
		return false
	}

	if len(name) == 0 {
		return false
	}
	if ok, err := path.Match(pattern[0], name[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], name[1:])
}
