package keywords

const (
	defaultTopN           = 10
	defaultMinTokenLength = 3
)

type Config struct {
	// TopN caps how many keywords one extraction returns.
	//
	// Default: 10
	TopN int `yaml:"top_n" envconfig:"MARVIN_KEYWORDS_TOP_N"`

	// MinTokenLength drops tokens shorter than this many characters.
	//
	// Default: 3
	MinTokenLength int `yaml:"min_token_length" envconfig:"MARVIN_KEYWORDS_MIN_TOKEN_LENGTH"`
}

// NewConfig returns the default extraction knobs.
func NewConfig() Config {
	return Config{
		TopN:           defaultTopN,
		MinTokenLength: defaultMinTokenLength,
	}
}

// stopwords are never returned as keywords. A short English list is enough
// for documentation text; swap the Extractor out entirely for other needs.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "have": {}, "this": {},
	"that": {}, "with": {}, "from": {}, "they": {}, "will": {}, "would": {},
	"there": {}, "their": {}, "what": {}, "about": {}, "which": {}, "when": {},
	"your": {}, "into": {}, "more": {}, "some": {}, "them": {}, "then": {},
	"than": {}, "also": {}, "been": {}, "were": {}, "these": {}, "those": {},
	"such": {}, "only": {}, "over": {}, "most": {}, "other": {}, "each": {},
	"using": {}, "used": {}, "use": {},
}
