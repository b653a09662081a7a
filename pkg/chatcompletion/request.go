package chatcompletion

import "fmt"

// ChatRequest pairs a resolved ProviderSettings with the generic
// description of one completion call. It is created per call, never
// mutated, and consumed exactly once by Invoke.
type ChatRequest struct {
	settings  *ProviderSettings
	messages  []Message
	functions []FunctionSpec
	// functionCall is the vendor's function_call directive: "auto",
	// "none", or a {"name": ...} selector. Nil leaves it to the vendor.
	functionCall any
	// model overrides the vendor model name; ignored by deployment-based
	// providers, which address a deployment instead.
	model string
	n     int
}

// RequestOption customizes one ChatRequest beyond its message list.
type RequestOption func(*ChatRequest)

// WithFunctions attaches the function specs the model may call.
func WithFunctions(specs ...FunctionSpec) RequestOption {
	return func(req *ChatRequest) { req.functions = specs }
}

// WithFunctionCall sets the function_call directive ("auto", "none", or a
// map selecting a specific function).
func WithFunctionCall(directive any) RequestOption {
	return func(req *ChatRequest) { req.functionCall = directive }
}

// WithModel names the vendor model for providers addressed by model name.
func WithModel(model string) RequestOption {
	return func(req *ChatRequest) { req.model = model }
}

// WithChoiceCount asks the vendor for n candidate completions.
func WithChoiceCount(n int) RequestOption {
	return func(req *ChatRequest) { req.n = n }
}

// NewChatRequest builds a request around settings and a transcript.
func NewChatRequest(s *ProviderSettings, messages []Message, opts ...RequestOption) *ChatRequest {
	req := &ChatRequest{
		settings: s,
		messages: messages,
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// Settings returns the resolved provider settings carried by the request.
func (req *ChatRequest) Settings() *ProviderSettings { return req.settings }

// BuildPayload maps the generic request onto the vendor's documented
// schema. It checks only that the payload is well-formed (non-empty
// message list, known role tags); message content semantics are the
// caller's business.
func (req *ChatRequest) BuildPayload() (Payload, error) {
	if len(req.messages) == 0 {
		return Payload{}, fmt.Errorf("chatcompletion: request has no messages")
	}
	for i, m := range req.messages {
		if !m.Role.valid() {
			return Payload{}, fmt.Errorf("chatcompletion: message %d has invalid role %q", i, m.Role)
		}
	}

	return Payload{
		Model:        req.model,
		Messages:     req.messages,
		MaxTokens:    req.settings.MaxTokens(),
		Temperature:  req.settings.Temperature(),
		N:            req.n,
		Functions:    req.functions,
		FunctionCall: req.functionCall,
	}, nil
}
