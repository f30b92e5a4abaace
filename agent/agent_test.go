package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewei11/multichat/core"
)

type panickyAgent struct{ base }

func (a *panickyAgent) Process(ctx context.Context, input string, _ Request) core.Result {
	return a.guard(input, func() core.Result {
		panic("boom")
	})
}

func TestGuard_RecoversPanicIntoFailure(t *testing.T) {
	a := &panickyAgent{base: newBase("test", nil)}
	res := a.Process(context.Background(), "触发故障", Request{})

	assert.False(t, res.Success)
	assert.Equal(t, "处理查询失败: boom", res.Error)
	assert.Equal(t, "test", res.Meta["domain"])
	assert.Greater(t, res.ProcessingTime.Nanoseconds(), int64(0))
}

func TestGuard_RejectsBlankInput(t *testing.T) {
	a := &panickyAgent{base: newBase("test", nil)}
	res := a.Process(context.Background(), "  \t ", Request{})

	assert.False(t, res.Success)
	assert.Equal(t, "输入必须是非空文本", res.Error)
}

func TestGuard_StampsDomainWithoutClobbering(t *testing.T) {
	b := newBase("test", nil)
	res := b.guard("输入", func() core.Result {
		return core.TextResult("ok").WithMeta("domain", "custom").WithMeta("extra", "1")
	})

	require.True(t, res.Success)
	assert.Equal(t, "custom", res.Meta["domain"], "an agent-set domain wins")
	assert.Equal(t, "1", res.Meta["extra"])
}

func TestMatchCategory_PrefersLongerNames(t *testing.T) {
	got := matchCategory("想买笔记本电脑", []string{"电脑", "笔记本电脑"})
	assert.Equal(t, "笔记本电脑", got)

	assert.Equal(t, "", matchCategory("想买冰箱", []string{"电脑", "手机"}))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("怎么办理护照", "办理", "流程"))
	assert.False(t, containsAny("随便聊聊", "办理", "流程"))
}
