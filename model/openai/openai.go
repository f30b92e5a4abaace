// Package openai provides the "fast" model implementation over the OpenAI
// Chat Completions API (streaming and non-streaming). It adapts the
// normalized Request/Response structures into the SDK's message format and
// back; transport failures become in-band error fragments.
package openai

import (
	"context"

	"github.com/openai/openai-go"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/model"
)

// Options configure the OpenAI model adapter. Fields mirror a minimal subset
// of Chat Completion parameters; extend via functional options.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	Retry               model.RetryPolicy
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model
// interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	return NewModelFromClient(&client, optFns...)
}

// NewModelFromClient creates a new OpenAI model from an existing client.
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 2048,
		Retry:               model.DefaultRetryPolicy(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "openai"}
}

// Generate implements unified streaming / non-streaming generation.
func (m *Model) Generate(ctx context.Context, req model.Request) <-chan model.Response {
	out := make(chan model.Response, 32)
	go func() {
		defer close(out)
		params := openai.ChatCompletionNewParams{
			Messages:            buildMessages(req),
			Model:               m.opts.Model,
			Temperature:         openai.Float(m.opts.Temperature),
			MaxCompletionTokens: openai.Int(m.opts.MaxCompletionTokens),
		}
		if req.Stream {
			m.handleStreaming(ctx, params, out)
			return
		}
		m.handleNonStreaming(ctx, params, out)
	}()
	return out
}

// buildMessages converts system prompt, history and the current prompt into
// OpenAI chat messages.
func buildMessages(req model.Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, turn := range req.History {
		switch turn.Role {
		case core.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	return append(messages, openai.UserMessage(req.Prompt))
}

// handleStreaming relays delta chunks as partial fragments. Once the stream
// has begun it is never retried.
func (m *Model) handleStreaming(
	ctx context.Context,
	params openai.ChatCompletionNewParams,
	out chan<- model.Response,
) {
	stream := m.client.Chat.Completions.NewStreaming(ctx, params)
	for stream.Next() {
		ck := stream.Current()
		for _, choice := range ck.Choices {
			if choice.Delta.Content != "" {
				select {
				case <-ctx.Done():
					return
				case out <- model.Response{Text: choice.Delta.Content, Partial: true}:
				}
			}
			if choice.FinishReason != "" {
				out <- model.Response{FinishReason: model.FinishStop}
			}
		}
	}
	if err := stream.Err(); err != nil {
		out <- model.ErrorResponse(m.opts.Model, err)
	}
}

// handleNonStreaming performs a retried completion call and emits the full
// text as the terminal response.
func (m *Model) handleNonStreaming(
	ctx context.Context,
	params openai.ChatCompletionNewParams,
	out chan<- model.Response,
) {
	var completion *openai.ChatCompletion
	err := m.opts.Retry.Do(ctx, func() error {
		resp, err := m.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return err
		}
		completion = resp
		return nil
	})
	if err != nil {
		out <- model.ErrorResponse(m.opts.Model, err)
		return
	}
	var text string
	if len(completion.Choices) > 0 {
		text = completion.Choices[0].Message.Content
	}
	out <- model.Response{Text: text, FinishReason: model.FinishStop}
}
