package model

import (
	"context"
	"fmt"

	"github.com/gewei11/multichat/core"
)

// Finish reasons reported on the terminal response of a generation stream.
const (
	FinishStop  = "stop"
	FinishError = "error"
)

// Request captures the normalized model input produced by agents.
type Request struct {
	Prompt  string      `json:"prompt"`
	System  string      `json:"system,omitempty"`
	History []core.Turn `json:"history,omitempty"`
	Stream  bool        `json:"stream,omitempty"`
}

// Response is one (partial or final) fragment emitted by a model. The last
// response of a stream carries a FinishReason; FinishError marks an in-band
// failure whose Text is already a user-presentable message.
type Response struct {
	Text         string `json:"text"`
	Partial      bool   `json:"partial"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// Info contains metadata about a model implementation. Name doubles as the
// explicit-selection key on the session-facing surface.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// Model is the minimal interface agents use to drive generation. Generate
// returns a channel that is always closed by the producer; consuming it
// drives the (possibly remote) call.
type Model interface {
	Generate(ctx context.Context, req Request) <-chan Response
	Info() Info
}

// Fragments adapts a response stream to the plain fragment stream shape
// consumed by the dispatcher, dropping empty chunks. When ctx is cancelled
// the adapter drains the producer so it can close, then stops; the forwarding
// goroutine never outlives an abandoned consumer.
func Fragments(ctx context.Context, responses <-chan Response) core.Stream {
	out := make(chan string)
	go func() {
		defer close(out)
		for resp := range responses {
			if resp.Text == "" {
				continue
			}
			select {
			case <-ctx.Done():
				for range responses {
				}
				return
			case out <- resp.Text:
			}
		}
	}()
	return out
}

// CollectText drains a generation stream into the concatenated response
// text. Used by strategies that need a completed draft before fanning out.
func CollectText(ctx context.Context, responses <-chan Response) string {
	return core.Collect(ctx, Fragments(ctx, responses))
}

// ErrorResponse renders a transport failure as the final in-band fragment.
func ErrorResponse(modelName string, err error) Response {
	return Response{
		Text:         fmt.Sprintf("抱歉，调用%s模型时出现问题：%v。请稍后重试。", modelName, err),
		FinishReason: FinishError,
	}
}
