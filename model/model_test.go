package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedModel_CannedResponse(t *testing.T) {
	m := NewScriptedModel("qwen2.5", "ollama")
	m.AddResponse("你好", "您好，很高兴见到您。")

	got := CollectText(context.Background(), m.Generate(context.Background(), Request{Prompt: "你好"}))
	assert.Equal(t, "您好，很高兴见到您。", got)
}

func TestScriptedModel_EchoForUnknownPrompt(t *testing.T) {
	m := NewScriptedModel("qwen2.5", "ollama")
	got := CollectText(context.Background(), m.Generate(context.Background(), Request{Prompt: "随便问问"}))
	assert.Equal(t, "[qwen2.5] 随便问问", got)
}

func TestScriptedModel_StreamingEmitsPartials(t *testing.T) {
	m := NewScriptedModel("qwen2.5", "ollama")
	m.AddResponse("你好", "您好")

	var partials []string
	var finish string
	for resp := range m.Generate(context.Background(), Request{Prompt: "你好", Stream: true}) {
		if resp.Partial {
			partials = append(partials, resp.Text)
		}
		if resp.FinishReason != "" {
			finish = resp.FinishReason
		}
	}
	assert.Equal(t, []string{"您", "好"}, partials)
	assert.Equal(t, FinishStop, finish)
}

func TestScriptedModel_FailureIsInBand(t *testing.T) {
	m := NewScriptedModel("deepseek-r1", "ollama")
	m.FailWith(errors.New("connection refused"))

	var last Response
	for resp := range m.Generate(context.Background(), Request{Prompt: "你好"}) {
		last = resp
	}
	assert.Equal(t, FinishError, last.FinishReason)
	assert.Contains(t, last.Text, "抱歉，调用deepseek-r1模型时出现问题")
	assert.Contains(t, last.Text, "connection refused")
}

func TestErrorResponse_Rendering(t *testing.T) {
	resp := ErrorResponse("qwen2.5", errors.New("超时"))
	assert.Equal(t, "抱歉，调用qwen2.5模型时出现问题：超时。请稍后重试。", resp.Text)
	assert.Equal(t, FinishError, resp.FinishReason)
}

func TestFragments_DropsEmptyChunks(t *testing.T) {
	ch := make(chan Response, 4)
	ch <- Response{Text: "第一", Partial: true}
	ch <- Response{Text: "", Partial: true}
	ch <- Response{Text: "段", Partial: true}
	ch <- Response{FinishReason: FinishStop}
	close(ch)

	var frags []string
	for frag := range Fragments(context.Background(), ch) {
		frags = append(frags, frag)
	}
	assert.Equal(t, []string{"第一", "段"}, frags)
}

func TestFragments_CancelledCollectionReleasesProducer(t *testing.T) {
	ch := make(chan Response)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			ch <- Response{Text: "片", Partial: true}
		}
		close(ch)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	CollectText(ctx, ch)

	// The adapter must drain the producer after cancellation; a stranded
	// producer would keep this send blocked forever.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("producer still blocked after a cancelled collection")
	}
}

func TestRetryPolicy_SucceedsAfterTransientFailure(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond, Backoff: 1.0}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_ReturnsLastError(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond, Backoff: 1.0}
	err := p.Do(context.Background(), func() error { return errors.New("permanent") })
	require.Error(t, err)
	assert.Equal(t, "permanent", err.Error())
}

func TestRetryPolicy_StopsOnCancel(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, Delay: 50 * time.Millisecond, Backoff: 1.0}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Do(ctx, func() error { return errors.New("transient") })
	assert.ErrorIs(t, err, context.Canceled)
}
