package agent

import (
	"context"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/selector"
	"github.com/gewei11/multichat/sentiment"
)

// Conversation handles free-form dialogue. It is the fallback domain: every
// input that no other rule claims lands here, so it accepts anything and
// optionally runs the sentiment pipeline around the model answer.
type Conversation struct {
	base
	selector *selector.Selector
	analyzer sentiment.Analyzer
	adjuster *sentiment.Adjuster
	tracker  *sentiment.Tracker
}

// ConversationOptions configure construction of a Conversation agent.
type ConversationOptions struct {
	Logger logging.Logger
	// TrendWindow bounds the rolling mood-trend history.
	TrendWindow int
}

// NewConversation builds the conversation agent around a selector and a
// sentiment analyzer.
func NewConversation(sel *selector.Selector, analyzer sentiment.Analyzer, optFns ...func(o *ConversationOptions)) *Conversation {
	opts := ConversationOptions{TrendWindow: 10}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Conversation{
		base:     newBase(core.DomainConversation, opts.Logger),
		selector: sel,
		analyzer: analyzer,
		adjuster: sentiment.NewAdjuster(),
		tracker:  sentiment.NewTracker(opts.TrendWindow),
	}
}

// Trend exposes the current mood trend of the rolling window.
func (a *Conversation) Trend() sentiment.Label { return a.tracker.Trend() }

// Process implements Agent. The model answer is collected fully before tone
// adjustment because the templates wrap the whole text.
func (a *Conversation) Process(ctx context.Context, input string, req Request) core.Result {
	return a.guard(input, func() core.Result {
		var senti sentiment.Result
		if req.Options.SentimentEnabled {
			senti = a.analyzer.Analyze(ctx, input)
			a.tracker.Record(senti.Label)
			a.logger.Debug("sentiment analyzed", "label", string(senti.Label), "confidence", senti.Confidence)
		}

		body := model.CollectText(ctx, a.selector.Generate(ctx, req.Options.ModelOption, model.Request{
			Prompt:  input,
			History: req.History,
			Stream:  true,
		}))

		if req.Options.SentimentEnabled {
			body = a.adjuster.Adjust(body, senti)
		}

		full := body
		if req.Options.SentimentEnabled && req.Options.ShowAnalysis {
			full = sentiment.FormatReport(senti) + "\n\n模型回答：\n" + body
		}

		res := core.TextResult(full)
		if req.Options.SentimentEnabled {
			res = res.WithMeta("sentiment", string(senti.Label))
		}
		return res
	})
}
