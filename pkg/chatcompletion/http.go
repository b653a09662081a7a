package chatcompletion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient is the net/http VendorClient for OpenAI-style chat APIs. It
// sends one request per Invoke with the settings' timeout on the client
// and reports every non-2xx status as an error; any retrying is left to
// the caller's workflow layer.
type HTTPClient struct {
	provider       Provider
	apiKey         string
	apiVersion     string
	deploymentName string
	url            string
	httpClient     *http.Client
}

// NewHTTPClient builds a vendor client from resolved settings.
//
// Azure OpenAI addresses a deployment:
//
//	{apiBase}/openai/deployments/{deployment}/chat/completions?api-version={v}
//
// with the key in an api-key header. OpenAI-style providers use
// {apiBase}/chat/completions with a bearer token.
func NewHTTPClient(s *ProviderSettings) *HTTPClient {
	base := strings.TrimRight(s.APIBase(), "/")

	var url string
	if s.Provider().EndpointBased {
		url = fmt.Sprintf("%s/openai/deployments/%s/chat/completions", base, s.DeploymentName())
	} else {
		url = base + "/chat/completions"
	}

	return &HTTPClient{
		provider:       s.Provider(),
		apiKey:         s.APIKey(),
		apiVersion:     s.APIVersion(),
		deploymentName: s.DeploymentName(),
		url:            url,
		httpClient:     &http.Client{Timeout: s.RequestTimeout()},
	}
}

// APIKey exposes the configured key so a pre-existing client can serve as
// a key source for later resolutions.
func (c *HTTPClient) APIKey() string { return c.apiKey }

// Invoke executes the chat-completion exchange.
func (c *HTTPClient) Invoke(ctx context.Context, payload Payload) (*VendorResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.provider.EndpointBased {
		req.Header.Set("api-key", c.apiKey)
		q := req.URL.Query()
		q.Set("api-version", c.apiVersion)
		req.URL.RawQuery = q.Encode()
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, vendorStatusError(resp)
	}

	var parsed VendorResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &parsed, nil
}

// vendorStatusError extracts the vendor's error message from a non-2xx
// body when one is present, falling back to the bare status code.
func vendorStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var parsed struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    any    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return fmt.Errorf("http %d: %s", resp.StatusCode, parsed.Error.Message)
	}
	return fmt.Errorf("http %d", resp.StatusCode)
}
