package selector

import (
	"context"
	"strings"

	"github.com/gewei11/multichat/model"
)

// Strategy produces a response stream for a prompt, hiding which backing
// model (or combination) served it.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, req model.Request) <-chan model.Response
}

// Fixed always delegates to one named model.
type Fixed struct {
	Model model.Model
}

// Name returns the backing model's name.
func (f Fixed) Name() string { return f.Model.Info().Name }

// Generate implements Strategy.
func (f Fixed) Generate(ctx context.Context, req model.Request) <-chan model.Response {
	return f.Model.Generate(ctx, req)
}

// Auto routes to Heavy when the prompt contains any of the configured
// domain keywords (or exceeds HeavyLen runes, when set), otherwise to Fast.
type Auto struct {
	Fast     model.Model
	Heavy    model.Model
	Keywords []string
	// HeavyLen routes long inputs to the heavy model when > 0.
	HeavyLen int
}

// Name implements Strategy.
func (Auto) Name() string { return KeyAuto }

// Generate implements Strategy.
func (a Auto) Generate(ctx context.Context, req model.Request) <-chan model.Response {
	return a.pick(req.Prompt).Generate(ctx, req)
}

func (a Auto) pick(prompt string) model.Model {
	if a.HeavyLen > 0 && len([]rune(prompt)) > a.HeavyLen {
		return a.Heavy
	}
	for _, kw := range a.Keywords {
		if strings.Contains(prompt, kw) {
			return a.Heavy
		}
	}
	return a.Fast
}

// Section headers of the hybrid composition. Fixed so downstream rendering
// stays deterministic.
const (
	hybridPrimaryHeader    = "综合回复：\n\n"
	hybridSupplementHeader = "\n\n补充信息：\n"
)

// Hybrid drives the fast model to completion, then asks the heavy model for
// supplementary detail grounded on the draft, and concatenates both under
// fixed section headers. The two calls run sequentially, not concurrently.
// If either sub-call yields empty output the non-empty one is returned alone.
type Hybrid struct {
	Fast  model.Model
	Heavy model.Model
}

// Name implements Strategy.
func (Hybrid) Name() string { return KeyHybrid }

// Generate implements Strategy.
func (h Hybrid) Generate(ctx context.Context, req model.Request) <-chan model.Response {
	out := make(chan model.Response, 4)
	go func() {
		defer close(out)

		draftReq := req
		draftReq.Stream = false
		draft := strings.TrimSpace(model.CollectText(ctx, h.Fast.Generate(ctx, draftReq)))

		supplReq := req
		supplReq.Stream = false
		supplReq.Prompt = "请对以下问题提供专业的补充说明：" + req.Prompt + "\n原始回答：" + draft
		supplement := strings.TrimSpace(model.CollectText(ctx, h.Heavy.Generate(ctx, supplReq)))

		emit := func(text string) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- model.Response{Text: text, Partial: true}:
				return true
			}
		}
		switch {
		case draft != "" && supplement != "":
			if !emit(hybridPrimaryHeader) || !emit(draft) || !emit(hybridSupplementHeader) || !emit(supplement) {
				return
			}
		case draft != "":
			if !emit(draft) {
				return
			}
		case supplement != "":
			if !emit(supplement) {
				return
			}
		}
		// The buffer can be full of partials here; an abandoned consumer must
		// not strand the goroutine on the terminal send.
		select {
		case <-ctx.Done():
		case out <- model.Response{FinishReason: model.FinishStop}:
		}
	}()
	return out
}
