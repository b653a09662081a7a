package chatcompletion

import "fmt"

// ConfigurationError reports a required provider setting that stayed unset
// after every resolution step. It names the missing field and, when one
// exists, the environment variable that would supply it. Non-retryable.
type ConfigurationError struct {
	Field  string
	EnvVar string
	Reason string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("chatcompletion: invalid configuration: %s", e.Field)
	if e.Reason != "" {
		msg += " " + e.Reason
	} else {
		msg += " is not set"
	}
	if e.EnvVar != "" {
		msg += fmt.Sprintf(" (set %s)", e.EnvVar)
	}
	return msg
}

// ProviderError wraps a failure reported by the vendor: auth, rate limit,
// transport. The adapter never retries; retry policy belongs to the
// workflow layer driving it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("chatcompletion: provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NormalizationError reports a vendor response whose shape did not match
// the expected structure (a choices list, each carrying a message). It is
// distinct from ProviderError so callers can tell "provider unreachable"
// apart from "provider reachable but returned something unparseable".
type NormalizationError struct {
	Provider string
	Reason   string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("chatcompletion: provider %s returned an unexpected response: %s", e.Provider, e.Reason)
}
