package settings

// ProviderSection holds the per-provider defaults a user may set in the
// settings file. Pointer fields distinguish "not set" from zero values so
// that only explicitly configured values take part in resolution.
type ProviderSection struct {
	// Secret used to authenticate against the provider. Prefer setting this
	// through the provider-specific environment variable instead of the file.
	APIKey string `yaml:"api_key" envconfig:"API_KEY"`

	// Endpoint of the provider API. For Azure OpenAI this has the form
	// https://YOUR_RESOURCE_NAME.openai.azure.com
	APIBase string `yaml:"api_base" envconfig:"API_BASE"`

	// Provider API version, e.g. "2023-07-01-preview" for Azure OpenAI.
	APIVersion string `yaml:"api_version" envconfig:"API_VERSION"`

	// Name chosen for the model deployment (Azure OpenAI only).
	DeploymentName string `yaml:"deployment_name" envconfig:"DEPLOYMENT_NAME"`

	MaxTokens             *int     `yaml:"max_tokens" envconfig:"MAX_TOKENS"`
	Temperature           *float64 `yaml:"temperature" envconfig:"TEMPERATURE"`
	RequestTimeoutSeconds *float64 `yaml:"request_timeout_seconds" envconfig:"REQUEST_TIMEOUT_SECONDS"`
}

// Pipeline holds the knobs consumed by the knowledge-refresh flow.
type Pipeline struct {
	// Token window used when splitting documents into excerpts.
	//
	// Default: 400
	ChunkTokens int `yaml:"chunk_tokens" envconfig:"MARVIN_CHUNK_TOKENS"`

	// Tokens shared between consecutive excerpts.
	//
	// Default: 50
	ChunkOverlap int `yaml:"chunk_overlap" envconfig:"MARVIN_CHUNK_OVERLAP"`

	// Maximum number of loaders executed concurrently.
	//
	// Default: 4
	LoaderConcurrency int `yaml:"loader_concurrency" envconfig:"MARVIN_LOADER_CONCURRENCY"`

	// User-Agent header sent by the document loaders.
	UserAgent string `yaml:"user_agent" envconfig:"MARVIN_USER_AGENT"`
}

// Settings is the process-wide configuration object. It is loaded once at
// startup and is read-only afterwards; components receive it explicitly
// instead of mutating shared state at runtime.
type Settings struct {
	LogLevel string `yaml:"log_level" envconfig:"MARVIN_LOG_LEVEL"`

	// Provider sub-sections.
	OpenAI      ProviderSection `yaml:"openai"`
	AzureOpenAI ProviderSection `yaml:"azure_openai"`

	// Global LLM tuning values. When set, these override the provider
	// sub-sections (but never explicit per-call arguments).
	LLMMaxTokens             *int     `yaml:"llm_max_tokens" envconfig:"MARVIN_LLM_MAX_TOKENS"`
	LLMTemperature           *float64 `yaml:"llm_temperature" envconfig:"MARVIN_LLM_TEMPERATURE"`
	LLMRequestTimeoutSeconds *float64 `yaml:"llm_request_timeout_seconds" envconfig:"MARVIN_LLM_REQUEST_TIMEOUT_SECONDS"`

	Pipeline Pipeline `yaml:"pipeline"`
}

const (
	defaultChunkTokens       = 400
	defaultChunkOverlap      = 50
	defaultLoaderConcurrency = 4
	defaultUserAgent         = "marvin-loader/1.0"
)
