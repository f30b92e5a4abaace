// Package anthropic provides the "heavy" model implementation over the
// Anthropic Messages API. Responses are fetched with the retried
// non-streaming call and emitted as a terminal fragment; transport failures
// become in-band error fragments.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/model"
)

// Options configures the Anthropic model adapter.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
	Retry       model.RetryPolicy
}

// Model wraps the Anthropic Messages API behind the generic model.Model
// interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)
	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new Anthropic model from an existing client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   2048,
		Retry:       model.DefaultRetryPolicy(),
	}
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: string(m.opts.Model), Provider: "anthropic"}
}

// Generate implements model.Model. The supplementary role this model plays
// means callers collect its output anyway, so the terminal-fragment shape
// costs nothing.
func (m *Model) Generate(ctx context.Context, req model.Request) <-chan model.Response {
	out := make(chan model.Response, 1)
	go func() {
		defer close(out)
		params := anthropic.MessageNewParams{
			Model:       m.opts.Model,
			Messages:    buildMessages(req),
			MaxTokens:   m.opts.MaxTokens,
			Temperature: anthropic.Float(m.opts.Temperature),
		}
		if req.System != "" {
			params.System = []anthropic.TextBlockParam{{Text: req.System}}
		}
		var resp *anthropic.Message
		err := m.opts.Retry.Do(ctx, func() error {
			r, err := m.client.Messages.New(ctx, params)
			if err != nil {
				return err
			}
			resp = r
			return nil
		})
		if err != nil {
			out <- model.ErrorResponse(string(m.opts.Model), err)
			return
		}
		var text string
		for _, block := range resp.Content {
			if block.Type == "text" {
				text += block.AsText().Text
			}
		}
		out <- model.Response{Text: text, FinishReason: model.FinishStop}
	}()
	return out
}

// buildMessages converts history plus the current prompt into Anthropic
// messages. System content is carried separately in params.System.
func buildMessages(req model.Request) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(req.History)+1)
	for _, turn := range req.History {
		switch turn.Role {
		case core.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Content)))
		}
	}
	return append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)))
}
