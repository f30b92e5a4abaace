package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_ConcatenatesFragments(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "你好"
	ch <- "，"
	ch <- "世界"
	close(ch)

	assert.Equal(t, "你好，世界", Collect(context.Background(), Stream(ch)))
}

func TestCollect_StopsOnCancel(t *testing.T) {
	ch := make(chan string, 2)
	ch <- "第一段"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := Collect(ctx, Stream(ch))
	assert.True(t, got == "" || got == "第一段", "cancellation returns what was gathered so far")
}

func TestTextStream_SingleFragmentAndClosed(t *testing.T) {
	s := TextStream("答案")
	frag, ok := <-s
	require.True(t, ok)
	assert.Equal(t, "答案", frag)
	_, ok = <-s
	assert.False(t, ok, "stream must be closed after the single fragment")
}

func TestParseOptions_MergesOverDefaults(t *testing.T) {
	opts := ParseOptions(map[string]any{
		OptionModel:            "hybrid",
		OptionShowAnalysis:     true,
		OptionWeatherEnabled:   false,
		"unknown_key":          "ignored",
		OptionSentimentEnabled: "not-a-bool",
	})

	assert.Equal(t, "hybrid", opts.ModelOption)
	assert.True(t, opts.ShowAnalysis)
	assert.False(t, opts.WeatherEnabled)
	assert.True(t, opts.SentimentEnabled, "a mistyped value keeps the default")
}

func TestParseOptions_NilMapIsDefaults(t *testing.T) {
	assert.Equal(t, DefaultOptions(), ParseOptions(nil))
}

func TestParseOptions_EmptyModelKeepsDefault(t *testing.T) {
	opts := ParseOptions(map[string]any{OptionModel: ""})
	assert.Equal(t, "auto", opts.ModelOption)
}

func TestFailureResult(t *testing.T) {
	res := FailureResult("输入必须是非空文本")
	assert.False(t, res.Success)
	assert.Equal(t, "输入必须是非空文本", res.Error)
	assert.Nil(t, res.Response)
}

func TestWithMeta_LazyAllocation(t *testing.T) {
	res := TextResult("答案").WithMeta("domain", "weather").WithMeta("city", "北京")
	assert.Equal(t, "weather", res.Meta["domain"])
	assert.Equal(t, "北京", res.Meta["city"])
}

func TestNewTurn_AssignsIDAndTimestamp(t *testing.T) {
	turn := NewTurn(RoleUser, "你好")
	assert.Equal(t, RoleUser, turn.Role)
	assert.Equal(t, "你好", turn.Content)
	assert.NotEmpty(t, turn.ID)
	assert.False(t, turn.Timestamp.IsZero())

	other := NewTurn(RoleAssistant, "您好")
	assert.NotEqual(t, turn.ID, other.ID)
}
