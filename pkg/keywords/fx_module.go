package keywords

import "go.uber.org/fx"

// FXModule defines the Fx module for keyword extraction. It provides the
// frequency-based default behind the Extractor interface.
var FXModule = fx.Module("keywords",
	fx.Provide(
		NewConfig,
		fx.Annotate(NewFrequencyExtractor, fx.As(new(Extractor))),
	),
)
