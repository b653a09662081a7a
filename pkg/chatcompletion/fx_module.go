package chatcompletion

import (
	"go.uber.org/fx"

	"github.com/jmfajardod/marvin/pkg/logger"
	"github.com/jmfajardod/marvin/pkg/settings"
)

// FXModule defines the Fx module for the chatcompletion package.
//
// It resolves ProviderSettings for the default provider (Azure OpenAI) from
// the process-wide settings object and wires the HTTP vendor client behind
// the adapter. Applications that need another provider or per-call
// overrides construct settings directly with NewProviderSettings.
var FXModule = fx.Module("chatcompletion",
	fx.Provide(
		NewDefaultProviderSettings,
		NewVendorClient,
		NewAdapter,
	),
)

// NewDefaultProviderSettings resolves settings for Azure OpenAI from the
// process-wide settings object.
func NewDefaultProviderSettings(s *settings.Settings) (*ProviderSettings, error) {
	return NewProviderSettings(AzureOpenAI, WithSettings(s))
}

// NewVendorClient provides the HTTP vendor client as the VendorClient
// implementation used by the adapter.
func NewVendorClient(s *ProviderSettings) VendorClient {
	return NewHTTPClient(s)
}

// NewAdapter provides the ChatCompletion adapter over the shared logger.
func NewAdapter(client VendorClient, log *logger.Logger) *ChatCompletion {
	return NewChatCompletion(client, log)
}
