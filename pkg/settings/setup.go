package settings

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load builds the process-wide Settings. Values are resolved in two steps:
// the YAML file at path (skipped when path is empty or the file does not
// exist), then environment variables, which win over the file.
func Load(path string) (*Settings, error) {
	s := &Settings{
		Pipeline: Pipeline{
			ChunkTokens:       defaultChunkTokens,
			ChunkOverlap:      defaultChunkOverlap,
			LoaderConcurrency: defaultLoaderConcurrency,
			UserAgent:         defaultUserAgent,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("settings: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("settings: parse %s: %w", path, err)
		}
	}

	s.applyEnv()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSettings reads the settings file path from MARVIN_SETTINGS_PATH.
func NewSettings() (*Settings, error) {
	return Load(os.Getenv("MARVIN_SETTINGS_PATH"))
}

// applyEnv overlays environment variables onto the loaded file values.
// The environment is read exactly once, here; nothing else in the
// repository consults it for these settings afterwards.
func (s *Settings) applyEnv() {
	setString(&s.LogLevel, "MARVIN_LOG_LEVEL")

	s.OpenAI.applyEnv("MARVIN_OPENAI_")
	s.AzureOpenAI.applyEnv("MARVIN_AZURE_OPENAI_")

	setIntPtr(&s.LLMMaxTokens, "MARVIN_LLM_MAX_TOKENS")
	setFloatPtr(&s.LLMTemperature, "MARVIN_LLM_TEMPERATURE")
	setFloatPtr(&s.LLMRequestTimeoutSeconds, "MARVIN_LLM_REQUEST_TIMEOUT_SECONDS")

	setInt(&s.Pipeline.ChunkTokens, "MARVIN_CHUNK_TOKENS")
	setInt(&s.Pipeline.ChunkOverlap, "MARVIN_CHUNK_OVERLAP")
	setInt(&s.Pipeline.LoaderConcurrency, "MARVIN_LOADER_CONCURRENCY")
	setString(&s.Pipeline.UserAgent, "MARVIN_USER_AGENT")
}

func (p *ProviderSection) applyEnv(prefix string) {
	setString(&p.APIKey, prefix+"API_KEY")
	setString(&p.APIBase, prefix+"API_BASE")
	setString(&p.APIVersion, prefix+"API_VERSION")
	setString(&p.DeploymentName, prefix+"DEPLOYMENT_NAME")
	setIntPtr(&p.MaxTokens, prefix+"MAX_TOKENS")
	setFloatPtr(&p.Temperature, prefix+"TEMPERATURE")
	setFloatPtr(&p.RequestTimeoutSeconds, prefix+"REQUEST_TIMEOUT_SECONDS")
}

// Validate checks the pipeline knobs for values the flow cannot work with.
func (s *Settings) Validate() error {
	if s.Pipeline.ChunkTokens <= 0 {
		return fmt.Errorf("settings: chunk_tokens must be positive, got %d", s.Pipeline.ChunkTokens)
	}
	if s.Pipeline.ChunkOverlap < 0 {
		return fmt.Errorf("settings: chunk_overlap must not be negative, got %d", s.Pipeline.ChunkOverlap)
	}
	if s.Pipeline.LoaderConcurrency <= 0 {
		return fmt.Errorf("settings: loader_concurrency must be positive, got %d", s.Pipeline.LoaderConcurrency)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setIntPtr(dst **int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = &n
		}
	}
}

func setFloatPtr(dst **float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = &f
		}
	}
}
