package chatcompletion

import (
	"context"
	"fmt"
)

// Logger defines the interface for logging operations in the chatcompletion package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// ChatCompletion is the provider adapter: it turns a ChatRequest into the
// vendor payload, performs the single vendor exchange, and normalizes the
// raw response. It is stateless per call; retries, caching and scheduling
// belong to the workflow layer around it.
type ChatCompletion struct {
	client VendorClient
	logger Logger
}

// NewChatCompletion wires the adapter to a vendor client.
func NewChatCompletion(client VendorClient, logger Logger) *ChatCompletion {
	return &ChatCompletion{client: client, logger: logger}
}

// Invoke performs one blocking request-response exchange. Vendor failures
// come back as *ProviderError; responses that do not carry a well-formed
// choices list come back as *NormalizationError. No retry is attempted.
func (c *ChatCompletion) Invoke(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	provider := req.Settings().Provider()

	payload, err := req.BuildPayload()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Invoking chat completion", nil, map[string]interface{}{
		"provider": provider.Name,
		"messages": len(payload.Messages),
	})

	raw, err := c.client.Invoke(ctx, payload)
	if err != nil {
		c.logger.Error("Chat completion failed", err, map[string]interface{}{
			"provider": provider.Name,
		})
		return nil, &ProviderError{Provider: provider.Name, Err: err}
	}

	if err := validateShape(raw); err != nil {
		return nil, &NormalizationError{Provider: provider.Name, Reason: err.Error()}
	}

	return &ChatResponse{provider: provider, raw: raw}, nil
}

// validateShape checks the structure every normalization accessor relies
// on: a non-empty choices list where every choice carries a message.
func validateShape(raw *VendorResponse) error {
	if raw == nil {
		return fmt.Errorf("response is empty")
	}
	if len(raw.Choices) == 0 {
		return fmt.Errorf("response has no choices")
	}
	for i, choice := range raw.Choices {
		if choice.Message == nil {
			return fmt.Errorf("choice %d has no message", i)
		}
	}
	return nil
}
