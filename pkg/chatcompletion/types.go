package chatcompletion

import "context"

// Role tags a chat message with its author kind.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

func (r Role) valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction:
		return true
	}
	return false
}

// Message is one entry of a chat transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// Name is required for function-role messages and optional otherwise.
	Name string `json:"name,omitempty"`

	// FunctionCall is set on assistant messages that request a function
	// invocation instead of (or alongside) free text.
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
}

// FunctionCall is the structured action payload a model may emit.
// Arguments is the raw JSON string exactly as the vendor returned it.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// FunctionSpec describes one function the model may call.
type FunctionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// Payload is the vendor-facing request body, keyed the way OpenAI-style
// chat-completion APIs expect it.
type Payload struct {
	Model        string         `json:"model,omitempty"`
	Messages     []Message      `json:"messages"`
	MaxTokens    int            `json:"max_tokens"`
	Temperature  float64        `json:"temperature"`
	N            int            `json:"n,omitempty"`
	Functions    []FunctionSpec `json:"functions,omitempty"`
	FunctionCall any            `json:"function_call,omitempty"`
	Stop         []string       `json:"stop,omitempty"`
	User         string         `json:"user,omitempty"`
}

// VendorChoice is one candidate completion inside a vendor response.
type VendorChoice struct {
	Index        int      `json:"index"`
	Message      *Message `json:"message"`
	FinishReason string   `json:"finish_reason"`
}

// VendorUsage reports token accounting as returned by the vendor.
type VendorUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// VendorResponse is the raw response body of a chat-completion call.
type VendorResponse struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Choices []VendorChoice `json:"choices"`
	Usage   VendorUsage    `json:"usage"`
}

// VendorClient is the single opaque capability this package consumes: one
// blocking request-response exchange with a hosted provider. Implementations
// report transport, auth and rate-limit failures through the returned error
// and perform no retries.
type VendorClient interface {
	Invoke(ctx context.Context, payload Payload) (*VendorResponse, error)
}

// keyCarrier is implemented by vendor clients that already hold a
// configured API key; the resolution chain may fall back to it.
type keyCarrier interface {
	APIKey() string
}
