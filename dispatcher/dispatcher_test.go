package dispatcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewei11/multichat/agent"
	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/router"
	"github.com/gewei11/multichat/session"
)

// capturingAgent records what the dispatcher hands it and answers with a
// fixed text.
type capturingAgent struct {
	domain   string
	reply    string
	result   *core.Result
	lastHist []core.Turn
	lastIn   string
}

func (a *capturingAgent) Domain() string { return a.domain }

func (a *capturingAgent) Process(_ context.Context, input string, req agent.Request) core.Result {
	a.lastIn = input
	a.lastHist = req.History
	if a.result != nil {
		return *a.result
	}
	return core.TextResult(a.reply)
}

func newTestDispatcher(agents ...agent.Agent) (*Dispatcher, *session.InMemoryStore) {
	store := session.NewInMemoryStore()
	return New(router.New(router.DefaultRules(), nil), store, agents), store
}

func TestProcessInput_RoutesToDomainAgent(t *testing.T) {
	chat := &capturingAgent{domain: core.DomainConversation, reply: "聊天回答"}
	shop := &capturingAgent{domain: core.DomainEcommerce, reply: "购物回答"}
	d, _ := newTestDispatcher(chat, shop)

	got := d.ProcessInputSync(context.Background(), "s1", "推荐一款手机", core.DefaultOptions())
	assert.Equal(t, "购物回答", got)
	assert.Equal(t, "推荐一款手机", shop.lastIn)
	assert.Empty(t, chat.lastIn)
}

func TestProcessInput_FallsBackToConversation(t *testing.T) {
	chat := &capturingAgent{domain: core.DomainConversation, reply: "兜底回答"}
	d, _ := newTestDispatcher(chat)

	// Routes to weather, but no weather agent is registered.
	got := d.ProcessInputSync(context.Background(), "s1", "北京天气怎么样", core.DefaultOptions())
	assert.Equal(t, "兜底回答", got)
}

func TestProcessInput_HistoryExcludesCurrentTurn(t *testing.T) {
	chat := &capturingAgent{domain: core.DomainConversation, reply: "回答"}
	d, store := newTestDispatcher(chat)
	ctx := context.Background()

	d.ProcessInputSync(ctx, "s1", "你好", core.DefaultOptions())
	assert.Empty(t, chat.lastHist, "first turn sees no prior history")
	hist, err := store.History("s1")
	require.NoError(t, err)
	assert.Len(t, hist, 2)

	d.ProcessInputSync(ctx, "s1", "请问几点了", core.DefaultOptions())
	require.Len(t, chat.lastHist, 2, "second turn sees the first exchange only")
	assert.Equal(t, core.RoleUser, chat.lastHist[0].Role)
	assert.Equal(t, "你好", chat.lastHist[0].Content)
	assert.Equal(t, core.RoleAssistant, chat.lastHist[1].Role)
	hist, err = store.History("s1")
	require.NoError(t, err)
	assert.Len(t, hist, 4)
}

func TestProcessInput_StreamsRuneByRune(t *testing.T) {
	chat := &capturingAgent{domain: core.DomainConversation, reply: "你好世界"}
	d, _ := newTestDispatcher(chat)

	var frags []string
	for frag := range d.ProcessInput(context.Background(), "s1", "你好", core.DefaultOptions()) {
		frags = append(frags, frag)
	}
	assert.Equal(t, []string{"你", "好", "世", "界"}, frags)
}

func TestProcessInput_FailureEmitsApologyAndRecordsIt(t *testing.T) {
	failure := core.FailureResult("输入必须是非空文本")
	chat := &capturingAgent{domain: core.DomainConversation, result: &failure}
	d, store := newTestDispatcher(chat)

	got := d.ProcessInputSync(context.Background(), "s1", "你好", core.DefaultOptions())
	assert.Equal(t, "抱歉，处理您的输入时遇到了问题: 输入必须是非空文本", got)

	hist, err := store.History("s1")
	require.NoError(t, err)
	require.Len(t, hist, 2, "the apology is still a recorded assistant turn")
	assert.Equal(t, core.RoleAssistant, hist[1].Role)
	assert.True(t, strings.HasPrefix(hist[1].Content, "抱歉"))
}

func TestProcessInput_CancelledStreamRecordsNoAssistantTurn(t *testing.T) {
	chat := &capturingAgent{domain: core.DomainConversation, reply: strings.Repeat("长回答", 50)}
	d, store := newTestDispatcher(chat)

	ctx, cancel := context.WithCancel(context.Background())
	out := d.ProcessInput(ctx, "s1", "你好", core.DefaultOptions())

	<-out
	<-out
	cancel()
	for range out {
	}

	hist, err := store.History("s1")
	require.NoError(t, err)
	require.Len(t, hist, 1, "only the user turn survives a cancelled stream")
	assert.Equal(t, core.RoleUser, hist[0].Role)
}

func TestProcessInput_SessionsAreIsolated(t *testing.T) {
	chat := &capturingAgent{domain: core.DomainConversation, reply: "回答"}
	d, store := newTestDispatcher(chat)
	ctx := context.Background()

	d.ProcessInputSync(ctx, "a", "你好", core.DefaultOptions())
	d.ProcessInputSync(ctx, "b", "请问", core.DefaultOptions())

	histA, _ := store.History("a")
	histB, _ := store.History("b")
	assert.Len(t, histA, 2)
	assert.Len(t, histB, 2)

	require.NoError(t, d.ClearSession("a"))
	histA, _ = store.History("a")
	histB, _ = store.History("b")
	assert.Empty(t, histA)
	assert.Len(t, histB, 2)
}
