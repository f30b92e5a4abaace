package core

// Option keys accepted from the session-facing surface (UI toggles).
// Unrecognized keys are ignored, not errors.
const (
	OptionModel            = "model_option"
	OptionSentimentEnabled = "sentiment_enabled"
	OptionShowAnalysis     = "show_analysis"
	OptionWeatherEnabled   = "weather_enabled"
)

// Options carries the per-turn configuration the dispatcher accepts as
// context. ModelOption selects the model strategy by its config-facing
// string; an unknown value falls back to the selector default downstream.
type Options struct {
	ModelOption      string
	SentimentEnabled bool
	ShowAnalysis     bool
	WeatherEnabled   bool
}

// DefaultOptions mirrors the UI defaults: automatic model selection with
// sentiment adjustment and the weather domain enabled.
func DefaultOptions() Options {
	return Options{
		ModelOption:      "auto",
		SentimentEnabled: true,
		ShowAnalysis:     false,
		WeatherEnabled:   true,
	}
}

// ParseOptions merges a loosely typed option map (as delivered by UI layers)
// over the defaults. Values of unexpected type are ignored like unknown keys.
func ParseOptions(raw map[string]any) Options {
	opts := DefaultOptions()
	if raw == nil {
		return opts
	}
	if v, ok := raw[OptionModel].(string); ok && v != "" {
		opts.ModelOption = v
	}
	if v, ok := raw[OptionSentimentEnabled].(bool); ok {
		opts.SentimentEnabled = v
	}
	if v, ok := raw[OptionShowAnalysis].(bool); ok {
		opts.ShowAnalysis = v
	}
	if v, ok := raw[OptionWeatherEnabled].(bool); ok {
		opts.WeatherEnabled = v
	}
	return opts
}
