package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// Extractor pulls the salient keywords out of a text. The pipeline treats
// keyword extraction as an opaque capability, so callers may swap in any
// implementation; NewFrequencyExtractor is the default.
type Extractor interface {
	Extract(text string) []string
}

// FrequencyExtractor is a lightweight single-token extractor: lowercase,
// strip punctuation, drop stopwords and short tokens, rank by frequency.
type FrequencyExtractor struct {
	cfg Config
}

// NewFrequencyExtractor builds the default extractor from configuration.
func NewFrequencyExtractor(cfg Config) *FrequencyExtractor {
	if cfg.TopN <= 0 {
		cfg.TopN = defaultTopN
	}
	if cfg.MinTokenLength <= 0 {
		cfg.MinTokenLength = defaultMinTokenLength
	}
	return &FrequencyExtractor{cfg: cfg}
}

// Extract returns up to TopN keywords ordered by descending frequency,
// ties broken alphabetically so the output is deterministic.
func (e *FrequencyExtractor) Extract(text string) []string {
	counts := make(map[string]int)

	for _, raw := range strings.Fields(strings.ToLower(text)) {
		token := strings.TrimFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len(token) < e.cfg.MinTokenLength {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		counts[token]++
	}

	ranked := make([]string, 0, len(counts))
	for token := range counts {
		ranked = append(ranked, token)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > e.cfg.TopN {
		ranked = ranked[:e.cfg.TopN]
	}
	return ranked
}
