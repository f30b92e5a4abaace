package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/selector"
	"github.com/gewei11/multichat/sentiment"
)

func newChatAgent(fast *model.ScriptedModel) *Conversation {
	heavy := model.NewScriptedModel("heavymodel", "test")
	return NewConversation(selector.New(fast, heavy), sentiment.NewLexiconAnalyzer())
}

func TestConversation_NeutralAnswerIsUntouched(t *testing.T) {
	fast := model.NewScriptedModel("fastmodel", "test")
	fast.AddResponse("现在几点了", "现在是下午三点。")
	a := newChatAgent(fast)

	res := a.Process(context.Background(), "现在几点了", Request{Options: core.DefaultOptions()})
	require.True(t, res.Success)
	got := core.Collect(context.Background(), res.Response)

	assert.Equal(t, "现在是下午三点。", got, "neutral input keeps the raw model answer")
	assert.Equal(t, string(sentiment.Neutral), res.Meta["sentiment"])
}

func TestConversation_NegativeAnswerIsToneWrapped(t *testing.T) {
	fast := model.NewScriptedModel("fastmodel", "test")
	fast.AddResponse("今天真糟糕", "听起来今天不太顺利。")
	a := newChatAgent(fast)

	res := a.Process(context.Background(), "今天真糟糕", Request{Options: core.DefaultOptions()})
	require.True(t, res.Success)
	got := core.Collect(context.Background(), res.Response)

	assert.Equal(t, sentiment.NegativePrefix+"听起来今天不太顺利。"+sentiment.NegativeSuffix, got)
	assert.Equal(t, string(sentiment.Negative), res.Meta["sentiment"])
}

func TestConversation_ShowAnalysisPrependsReport(t *testing.T) {
	fast := model.NewScriptedModel("fastmodel", "test")
	fast.AddResponse("今天很开心", "那真是太好了！")
	a := newChatAgent(fast)

	opts := core.DefaultOptions()
	opts.ShowAnalysis = true
	res := a.Process(context.Background(), "今天很开心", Request{Options: opts})
	require.True(t, res.Success)
	got := core.Collect(context.Background(), res.Response)

	assert.True(t, strings.HasPrefix(got, "情感分析结果："))
	assert.Contains(t, got, "情感倾向: 正面")
	assert.Contains(t, got, "\n\n模型回答：\n")
	assert.Contains(t, got, "那真是太好了！")
}

func TestConversation_SentimentDisabledSkipsPipeline(t *testing.T) {
	fast := model.NewScriptedModel("fastmodel", "test")
	fast.AddResponse("今天真糟糕", "听起来今天不太顺利。")
	a := newChatAgent(fast)

	opts := core.DefaultOptions()
	opts.SentimentEnabled = false
	opts.ShowAnalysis = true
	res := a.Process(context.Background(), "今天真糟糕", Request{Options: opts})
	require.True(t, res.Success)
	got := core.Collect(context.Background(), res.Response)

	assert.Equal(t, "听起来今天不太顺利。", got, "disabled sentiment means no wrap and no report")
	assert.NotContains(t, res.Meta, "sentiment")
	assert.Equal(t, sentiment.Neutral, a.Trend(), "nothing recorded in the trend window")
}

func TestConversation_TrendFollowsRecentTurns(t *testing.T) {
	fast := model.NewScriptedModel("fastmodel", "test")
	a := newChatAgent(fast)

	opts := core.DefaultOptions()
	for _, input := range []string{"今天很开心", "真是太棒了", "谢谢你的帮助"} {
		res := a.Process(context.Background(), input, Request{Options: opts})
		require.True(t, res.Success)
		core.Collect(context.Background(), res.Response)
	}
	assert.Equal(t, sentiment.Positive, a.Trend())
}

func TestConversation_EmptyInputFails(t *testing.T) {
	a := newChatAgent(model.NewScriptedModel("fastmodel", "test"))
	res := a.Process(context.Background(), "", Request{Options: core.DefaultOptions()})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "非空")
}
