// Package multichat provides a high-level façade over the dispatch pipeline
// of a rule-routed, multi-domain conversational assistant. Most applications
// interact with this package by:
//  1. Creating an Assistant via New() (optionally overriding models, the
//     weather provider or the session store)
//  2. Processing turns asynchronously (ProcessInput) or synchronously
//     (ProcessInputSync)
//
// The façade delegates per-turn orchestration to dispatcher.Dispatcher while
// keeping setup concise. All defaults are safe for local development; the
// model backends report missing credentials in-band instead of failing
// construction.
package multichat

import (
	"context"
	"log/slog"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/gewei11/multichat/agent"
	"github.com/gewei11/multichat/config"
	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/dispatcher"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/metrics"
	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/model/anthropic"
	"github.com/gewei11/multichat/model/openai"
	"github.com/gewei11/multichat/router"
	"github.com/gewei11/multichat/selector"
	"github.com/gewei11/multichat/sentiment"
	"github.com/gewei11/multichat/session"
	"github.com/gewei11/multichat/weather"
)

// Options configures the Assistant instance.
type Options struct {
	// Config supplies credentials, model names and defaults. Nil falls back
	// to config.Default().
	Config *config.Config

	// FastModel and HeavyModel override the default OpenAI/Anthropic pair,
	// mainly for tests.
	FastModel  model.Model
	HeavyModel model.Model

	// WeatherProvider overrides the HTTP weather client.
	WeatherProvider weather.Provider

	// SessionStore defaults to an in-memory implementation.
	SessionStore session.Store

	// Metrics is optional; nil disables instrumentation.
	Metrics *metrics.Metrics

	// Logger defaults to a structured logger built from Config.Logging.
	Logger logging.Logger
}

// Assistant is the high-level façade aggregating router, agents and session
// state.
type Assistant struct {
	opts       Options
	dispatcher *dispatcher.Dispatcher
	analyzer   sentiment.Analyzer
}

// New creates an Assistant with optional overrides. Any unset collaborator
// is initialized with its default implementation.
func New(optFns ...func(o *Options)) *Assistant {
	opts := Options{Config: config.Default()}
	for _, fn := range optFns {
		fn(&opts)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = buildLogger(cfg.Logging)
	}
	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore()
	}
	if opts.FastModel == nil {
		var clientOpts []option.RequestOption
		if cfg.Models.OpenAI.APIKey != "" {
			clientOpts = append(clientOpts, option.WithAPIKey(cfg.Models.OpenAI.APIKey))
		}
		if cfg.Models.OpenAI.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(cfg.Models.OpenAI.BaseURL))
		}
		client := openaisdk.NewClient(clientOpts...)
		opts.FastModel = openai.NewModelFromClient(&client, func(o *openai.Options) {
			if cfg.Models.OpenAI.Model != "" {
				o.Model = cfg.Models.OpenAI.Model
			}
		})
	}
	if opts.HeavyModel == nil {
		opts.HeavyModel = anthropic.NewModel(func(o *anthropic.Options) {
			o.APIKey = cfg.Models.Anthropic.APIKey
			if cfg.Models.Anthropic.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Models.Anthropic.Model)
			}
		})
	}
	if opts.WeatherProvider == nil {
		opts.WeatherProvider = weather.NewClient(func(o *weather.ClientOptions) {
			o.APIKey = cfg.Weather.APIKey
			o.Logger = opts.Logger
		})
	}

	analyzer := sentiment.NewLexiconAnalyzer()
	sel := func(keywords ...string) *selector.Selector {
		return selector.New(opts.FastModel, opts.HeavyModel, func(o *selector.Options) {
			o.AutoKeywords = keywords
			o.AutoHeavyLen = 100
			o.Logger = opts.Logger
		})
	}

	agents := []agent.Agent{
		agent.NewConversation(sel("详细", "解释"), analyzer, func(o *agent.ConversationOptions) {
			o.Logger = opts.Logger
		}),
		agent.NewWeather(opts.WeatherProvider, func(o *agent.WeatherOptions) {
			o.Logger = opts.Logger
		}),
		agent.NewEducation(sel("详细", "解释"), func(o *agent.EducationOptions) {
			o.Logger = opts.Logger
		}),
		agent.NewEcommerce(sel("详细", "解释", "对比", "分析"), func(o *agent.EcommerceOptions) {
			o.Logger = opts.Logger
		}),
		agent.NewGovernment(sel("详细", "解释"), analyzer, func(o *agent.GovernmentOptions) {
			o.Logger = opts.Logger
		}),
	}

	d := dispatcher.New(
		router.New(router.DefaultRules(), opts.Logger),
		opts.SessionStore,
		agents,
		func(o *dispatcher.Options) {
			o.Logger = opts.Logger
			o.Metrics = opts.Metrics
		},
	)

	return &Assistant{opts: opts, dispatcher: d, analyzer: analyzer}
}

// DefaultOptions returns the per-turn options seeded from configuration.
func (a *Assistant) DefaultOptions() core.Options {
	opts := core.DefaultOptions()
	d := a.opts.Config.Defaults
	if d.ModelOption != "" {
		opts.ModelOption = d.ModelOption
	}
	if d.SentimentEnabled != nil {
		opts.SentimentEnabled = *d.SentimentEnabled
	}
	if d.ShowAnalysis != nil {
		opts.ShowAnalysis = *d.ShowAnalysis
	}
	if d.WeatherEnabled != nil {
		opts.WeatherEnabled = *d.WeatherEnabled
	}
	return opts
}

// ProcessInput handles one user turn, streaming the answer character by
// character. The returned channel is always closed; errors arrive in-band
// as the final text.
func (a *Assistant) ProcessInput(ctx context.Context, sessionID, input string, opts core.Options) <-chan string {
	return a.dispatcher.ProcessInput(ctx, sessionID, input, opts)
}

// ProcessInputSync collects the whole answer of one turn.
func (a *Assistant) ProcessInputSync(ctx context.Context, sessionID, input string, opts core.Options) string {
	return a.dispatcher.ProcessInputSync(ctx, sessionID, input, opts)
}

// History returns the recorded turns of a session.
func (a *Assistant) History(sessionID string) ([]core.Turn, error) {
	return a.dispatcher.History(sessionID)
}

// ClearSession drops the history of a session.
func (a *Assistant) ClearSession(sessionID string) error {
	return a.dispatcher.ClearSession(sessionID)
}

// AnalyzeSentiment exposes the sentiment analyzer for UIs that render the
// analysis alongside the conversation.
func (a *Assistant) AnalyzeSentiment(ctx context.Context, text string) sentiment.Result {
	return a.analyzer.Analyze(ctx, text)
}

func buildLogger(cfg config.Logging) logging.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return logging.New(logging.Config{Level: level, Format: cfg.Format})
}
