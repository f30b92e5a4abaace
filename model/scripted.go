package model

import (
	"context"
	"fmt"
)

// ScriptedModel is a lightweight in-memory Model useful for tests and
// examples. Canned completions are keyed by prompt; unknown prompts get a
// deterministic echo response.
type ScriptedModel struct {
	info      Info
	responses map[string]string
	failWith  error
}

// NewScriptedModel constructs a ScriptedModel with the given identity.
func NewScriptedModel(name, provider string) *ScriptedModel {
	return &ScriptedModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *ScriptedModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// FailWith makes every subsequent call surface err as an in-band error
// fragment, mimicking an unreachable transport.
func (m *ScriptedModel) FailWith(err error) { m.failWith = err }

// Generate implements Model; emits per-rune chunks when streaming is
// requested, then the terminal response.
func (m *ScriptedModel) Generate(ctx context.Context, req Request) <-chan Response {
	out := make(chan Response, 16)
	go func() {
		defer close(out)
		if m.failWith != nil {
			out <- ErrorResponse(m.info.Name, m.failWith)
			return
		}
		full, ok := m.responses[req.Prompt]
		if !ok {
			full = fmt.Sprintf("[%s] %s", m.info.Name, req.Prompt)
		}
		if req.Stream {
			for _, r := range full {
				select {
				case <-ctx.Done():
					return
				case out <- Response{Text: string(r), Partial: true}:
				}
			}
			out <- Response{FinishReason: FinishStop}
			return
		}
		out <- Response{Text: full, FinishReason: FinishStop}
	}()
	return out
}

// Info implements Model.
func (m *ScriptedModel) Info() Info { return m.info }
