// Package chatcompletion adapts a generic chat-completion request to a
// specific hosted LLM provider.
//
// The package does three things and nothing more:
//
//  1. Configuration resolution. NewProviderSettings merges four layered
//     sources with a fixed precedence, lowest to highest: hard-coded
//     defaults, the provider sub-section of the process-wide settings,
//     the global LLM tuning values (max tokens, temperature, request
//     timeout only), and explicit options. API keys additionally run
//     through an ordered fallback chain over the provider-specific
//     environment variable, the generic environment variable, a
//     pre-existing client's key, and the generic settings sub-section.
//     The chain is an explicit list of resolver functions, each applying
//     one source, so the precedence order is visible and testable.
//
//  2. Request construction and invocation. NewChatRequest pairs resolved
//     settings with a transcript; ChatCompletion.Invoke builds the vendor
//     payload and performs a single exchange through the VendorClient
//     interface. No retries: the workflow engine driving the adapter owns
//     retry, backoff and caching policy.
//
//  3. Response normalization. ChatResponse exposes the assistant message
//     through an arity-tagged view: Single when the vendor returned
//     exactly one choice, Multiple otherwise. FunctionCall mirrors the
//     same arity with nil entries preserved positionally.
//
// Secrets never leak: every string, JSON and zap rendering of
// ProviderSettings redacts the API key unconditionally.
//
// Basic usage:
//
//	ps, err := chatcompletion.NewProviderSettings(
//		chatcompletion.AzureOpenAI,
//		chatcompletion.WithSettings(cfg),
//		chatcompletion.WithDeploymentName("gpt-4"),
//	)
//	if err != nil { ... }
//
//	adapter := chatcompletion.NewChatCompletion(chatcompletion.NewHTTPClient(ps), log)
//	resp, err := adapter.Invoke(ctx, chatcompletion.NewChatRequest(ps, msgs))
//	if err != nil { ... }
//
//	if msg, ok := resp.Message().Single(); ok {
//		fmt.Println(msg.Content)
//	}
package chatcompletion
