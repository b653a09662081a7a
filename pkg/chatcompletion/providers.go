package chatcompletion

// Provider describes one hosted chat-completion vendor: which environment
// variables may carry its key, which fields are mandatory, and the fixed
// defaults the resolution chain starts from.
type Provider struct {
	// Name identifies the provider in errors and log entries.
	Name string

	// KeyEnvVar is the provider-specific environment variable consulted
	// first by the API-key fallback chain.
	KeyEnvVar string

	// GenericKeyEnvVar is the shared environment variable consulted when
	// the provider-specific one is empty.
	GenericKeyEnvVar string

	// DefaultAPIBase is used when no endpoint is configured anywhere.
	// Empty for endpoint-based providers, which must be given one.
	DefaultAPIBase string

	// DefaultAPIVersion is the API version assumed when none is configured.
	DefaultAPIVersion string

	// RequiresKey marks providers that refuse unauthenticated calls.
	RequiresKey bool

	// EndpointBased marks providers without a public default endpoint;
	// for these, apiBase is a required field.
	EndpointBased bool
}

// AzureOpenAI targets a model deployment hosted on Azure. The endpoint is
// per-resource, so apiBase must be configured explicitly.
var AzureOpenAI = Provider{
	Name:              "azure_openai",
	KeyEnvVar:         "MARVIN_AZURE_OPENAI_API_KEY",
	GenericKeyEnvVar:  "OPENAI_API_KEY",
	DefaultAPIVersion: "2023-07-01-preview",
	RequiresKey:       true,
	EndpointBased:     true,
}

// OpenAI targets the hosted OpenAI API.
var OpenAI = Provider{
	Name:             "openai",
	KeyEnvVar:        "MARVIN_OPENAI_API_KEY",
	GenericKeyEnvVar: "OPENAI_API_KEY",
	DefaultAPIBase:   "https://api.openai.com/v1",
	RequiresKey:      true,
}
