package chatcompletion

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/jmfajardod/marvin/pkg/settings"
)

const (
	defaultMaxTokens             = 1500
	defaultTemperature           = 0.8
	defaultRequestTimeoutSeconds = 600.0

	redactedPlaceholder = "********"
)

// EnvFunc looks up one environment variable. The lookup used by a
// ProviderSettings is captured once at construction time so resolution
// never depends on later environment mutations.
type EnvFunc func(key string) (string, bool)

// ProviderSettings describes how to reach one provider. It is fully
// resolved at construction and immutable afterwards, which makes it safe
// to share across concurrent invocations without locking.
type ProviderSettings struct {
	provider              Provider
	apiKey                string
	apiBase               string
	apiVersion            string
	deploymentName        string
	maxTokens             int
	temperature           float64
	requestTimeoutSeconds float64
}

func (s *ProviderSettings) Provider() Provider     { return s.provider }
func (s *ProviderSettings) APIKey() string         { return s.apiKey }
func (s *ProviderSettings) APIBase() string        { return s.apiBase }
func (s *ProviderSettings) APIVersion() string     { return s.apiVersion }
func (s *ProviderSettings) DeploymentName() string { return s.deploymentName }
func (s *ProviderSettings) MaxTokens() int         { return s.maxTokens }
func (s *ProviderSettings) Temperature() float64   { return s.temperature }

// RequestTimeoutSeconds is passed through to the invocation boundary; the
// adapter itself never enforces it.
func (s *ProviderSettings) RequestTimeoutSeconds() float64 { return s.requestTimeoutSeconds }

// RequestTimeout returns the timeout as a duration for http.Client consumers.
func (s *ProviderSettings) RequestTimeout() time.Duration {
	return time.Duration(s.requestTimeoutSeconds * float64(time.Second))
}

// String renders the settings with the apiKey redacted. The literal key
// never appears in any textual representation.
func (s *ProviderSettings) String() string {
	return fmt.Sprintf(
		"ProviderSettings(provider=%s apiKey=%s apiBase=%s apiVersion=%s deploymentName=%s maxTokens=%d temperature=%g requestTimeoutSeconds=%g)",
		s.provider.Name, s.redactedKey(), s.apiBase, s.apiVersion, s.deploymentName,
		s.maxTokens, s.temperature, s.requestTimeoutSeconds,
	)
}

// MarshalJSON redacts the apiKey, same as String.
func (s *ProviderSettings) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"provider":                s.provider.Name,
		"api_key":                 s.redactedKey(),
		"api_base":                s.apiBase,
		"api_version":             s.apiVersion,
		"deployment_name":         s.deploymentName,
		"max_tokens":              s.maxTokens,
		"temperature":             s.temperature,
		"request_timeout_seconds": s.requestTimeoutSeconds,
	})
}

// MarshalLogObject lets zap log the settings structurally, redacted.
func (s *ProviderSettings) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("provider", s.provider.Name)
	enc.AddString("api_key", s.redactedKey())
	enc.AddString("api_base", s.apiBase)
	enc.AddString("api_version", s.apiVersion)
	enc.AddString("deployment_name", s.deploymentName)
	enc.AddInt("max_tokens", s.maxTokens)
	enc.AddFloat64("temperature", s.temperature)
	enc.AddFloat64("request_timeout_seconds", s.requestTimeoutSeconds)
	return nil
}

func (s *ProviderSettings) redactedKey() string {
	if s.apiKey == "" {
		return ""
	}
	return redactedPlaceholder
}

// partial holds in-flight values during resolution; nil means "not yet set
// by any source", so later sources know whether they are overriding.
type partial struct {
	apiKey                *string
	apiBase               *string
	apiVersion            *string
	deploymentName        *string
	maxTokens             *int
	temperature           *float64
	requestTimeoutSeconds *float64
}

// resolution carries the configuration sources plus the partial being
// built. Resolvers mutate out only.
type resolution struct {
	provider     Provider
	env          EnvFunc
	settings     *settings.Settings
	globalClient VendorClient
	overrides    partial
	out          partial
}

// resolverFunc applies one configuration source to the partial settings.
// The chain below runs them lowest precedence first, so each function may
// overwrite what earlier ones set.
type resolverFunc func(*resolution) error

// resolverChain is the fixed precedence order: hard-coded defaults, the
// provider sub-section of the process-wide settings, the global LLM tuning
// values (three fields only), explicit constructor overrides, then the
// API-key fallback chain and required-field enforcement.
var resolverChain = []resolverFunc{
	applyDefaults,
	applyProviderSection,
	applyGlobalTuning,
	applyOverrides,
	resolveAPIKey,
	requireFields,
}

// Option configures a single resolution. Field options form the
// highest-precedence layer; source options supply the settings object,
// environment snapshot and global client consulted by lower layers.
type Option func(*resolution)

func WithAPIKey(key string) Option {
	return func(r *resolution) { r.overrides.apiKey = &key }
}

func WithAPIBase(base string) Option {
	return func(r *resolution) { r.overrides.apiBase = &base }
}

func WithAPIVersion(version string) Option {
	return func(r *resolution) { r.overrides.apiVersion = &version }
}

func WithDeploymentName(name string) Option {
	return func(r *resolution) { r.overrides.deploymentName = &name }
}

func WithMaxTokens(n int) Option {
	return func(r *resolution) { r.overrides.maxTokens = &n }
}

func WithTemperature(t float64) Option {
	return func(r *resolution) { r.overrides.temperature = &t }
}

func WithRequestTimeoutSeconds(seconds float64) Option {
	return func(r *resolution) { r.overrides.requestTimeoutSeconds = &seconds }
}

// WithSettings supplies the process-wide settings object. Its provider
// sub-section and global tuning values take part in resolution; without it
// only defaults, environment and explicit overrides apply.
func WithSettings(s *settings.Settings) Option {
	return func(r *resolution) { r.settings = s }
}

// WithEnviron replaces the environment snapshot, mainly for tests.
func WithEnviron(env EnvFunc) Option {
	return func(r *resolution) { r.env = env }
}

// WithGlobalClient registers a pre-existing vendor client. If it already
// carries an API key, the key fallback chain may use it.
func WithGlobalClient(c VendorClient) Option {
	return func(r *resolution) { r.globalClient = c }
}

// NewProviderSettings resolves a fully-populated ProviderSettings for the
// given provider. It fails with a *ConfigurationError when a required
// field stays unset after every source has been consulted.
func NewProviderSettings(provider Provider, opts ...Option) (*ProviderSettings, error) {
	r := &resolution{
		provider: provider,
		env:      os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, resolve := range resolverChain {
		if err := resolve(r); err != nil {
			return nil, err
		}
	}

	return &ProviderSettings{
		provider:              provider,
		apiKey:                deref(r.out.apiKey),
		apiBase:               deref(r.out.apiBase),
		apiVersion:            deref(r.out.apiVersion),
		deploymentName:        deref(r.out.deploymentName),
		maxTokens:             *r.out.maxTokens,
		temperature:           *r.out.temperature,
		requestTimeoutSeconds: *r.out.requestTimeoutSeconds,
	}, nil
}

func applyDefaults(r *resolution) error {
	r.out.maxTokens = intPtr(defaultMaxTokens)
	r.out.temperature = floatPtr(defaultTemperature)
	r.out.requestTimeoutSeconds = floatPtr(defaultRequestTimeoutSeconds)
	if r.provider.DefaultAPIVersion != "" {
		r.out.apiVersion = strPtr(r.provider.DefaultAPIVersion)
	}
	if r.provider.DefaultAPIBase != "" {
		r.out.apiBase = strPtr(r.provider.DefaultAPIBase)
	}
	return nil
}

func applyProviderSection(r *resolution) error {
	section := r.providerSection()
	if section == nil {
		return nil
	}
	if section.APIKey != "" {
		r.out.apiKey = strPtr(section.APIKey)
	}
	if section.APIBase != "" {
		r.out.apiBase = strPtr(section.APIBase)
	}
	if section.APIVersion != "" {
		r.out.apiVersion = strPtr(section.APIVersion)
	}
	if section.DeploymentName != "" {
		r.out.deploymentName = strPtr(section.DeploymentName)
	}
	if section.MaxTokens != nil {
		r.out.maxTokens = intPtr(*section.MaxTokens)
	}
	if section.Temperature != nil {
		r.out.temperature = floatPtr(*section.Temperature)
	}
	if section.RequestTimeoutSeconds != nil {
		r.out.requestTimeoutSeconds = floatPtr(*section.RequestTimeoutSeconds)
	}
	return nil
}

// applyGlobalTuning lets the process-wide tuning knobs win over the
// provider sub-section for the three sampling fields. Explicit overrides
// still beat them, since they apply later in the chain.
func applyGlobalTuning(r *resolution) error {
	if r.settings == nil {
		return nil
	}
	if r.settings.LLMMaxTokens != nil {
		r.out.maxTokens = intPtr(*r.settings.LLMMaxTokens)
	}
	if r.settings.LLMTemperature != nil {
		r.out.temperature = floatPtr(*r.settings.LLMTemperature)
	}
	if r.settings.LLMRequestTimeoutSeconds != nil {
		r.out.requestTimeoutSeconds = floatPtr(*r.settings.LLMRequestTimeoutSeconds)
	}
	return nil
}

func applyOverrides(r *resolution) error {
	if r.overrides.apiKey != nil {
		r.out.apiKey = r.overrides.apiKey
	}
	if r.overrides.apiBase != nil {
		r.out.apiBase = r.overrides.apiBase
	}
	if r.overrides.apiVersion != nil {
		r.out.apiVersion = r.overrides.apiVersion
	}
	if r.overrides.deploymentName != nil {
		r.out.deploymentName = r.overrides.deploymentName
	}
	if r.overrides.maxTokens != nil {
		r.out.maxTokens = r.overrides.maxTokens
	}
	if r.overrides.temperature != nil {
		r.out.temperature = r.overrides.temperature
	}
	if r.overrides.requestTimeoutSeconds != nil {
		r.out.requestTimeoutSeconds = r.overrides.requestTimeoutSeconds
	}
	return nil
}

// resolveAPIKey runs the ordered key fallback chain. It only runs when the
// provider needs a key and none of the precedence layers produced one, so
// an explicitly passed key is never replaced. The first non-empty source
// wins; later sources are not consulted.
func resolveAPIKey(r *resolution) error {
	if !r.provider.RequiresKey {
		return nil
	}
	if r.out.apiKey != nil && *r.out.apiKey != "" {
		return nil
	}

	if v, ok := r.env(r.provider.KeyEnvVar); ok && v != "" {
		r.out.apiKey = strPtr(v)
		return nil
	}
	if v, ok := r.env(r.provider.GenericKeyEnvVar); ok && v != "" {
		r.out.apiKey = strPtr(v)
		return nil
	}
	if carrier, ok := r.globalClient.(keyCarrier); ok {
		if key := carrier.APIKey(); key != "" {
			r.out.apiKey = strPtr(key)
			return nil
		}
	}
	if r.settings != nil && r.settings.OpenAI.APIKey != "" {
		r.out.apiKey = strPtr(r.settings.OpenAI.APIKey)
	}
	return nil
}

func requireFields(r *resolution) error {
	if r.provider.RequiresKey && deref(r.out.apiKey) == "" {
		return &ConfigurationError{Field: "apiKey", EnvVar: r.provider.KeyEnvVar}
	}
	if r.provider.EndpointBased && deref(r.out.apiBase) == "" {
		return &ConfigurationError{Field: "apiBase", EnvVar: r.provider.envVar("API_BASE")}
	}
	if *r.out.maxTokens <= 0 {
		return &ConfigurationError{Field: "maxTokens", Reason: "must be positive"}
	}
	if t := *r.out.temperature; t < 0 || t > 2 {
		return &ConfigurationError{Field: "temperature", Reason: "must be within [0, 2]"}
	}
	if *r.out.requestTimeoutSeconds <= 0 {
		return &ConfigurationError{Field: "requestTimeoutSeconds", Reason: "must be positive"}
	}
	return nil
}

// providerSection picks the sub-section of the process-wide settings that
// belongs to the provider under resolution.
func (r *resolution) providerSection() *settings.ProviderSection {
	if r.settings == nil {
		return nil
	}
	switch r.provider.Name {
	case AzureOpenAI.Name:
		return &r.settings.AzureOpenAI
	case OpenAI.Name:
		return &r.settings.OpenAI
	}
	return nil
}

// envVar derives the conventional environment variable name for one of
// the provider's fields, e.g. MARVIN_AZURE_OPENAI_API_BASE.
func (p Provider) envVar(suffix string) string {
	return "MARVIN_" + strings.ToUpper(p.Name) + "_" + suffix
}

func strPtr(v string) *string    { return &v }
func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
