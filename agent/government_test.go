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

func newGovAgent() *Government {
	fast := model.NewScriptedModel("fastmodel", "test")
	heavy := model.NewScriptedModel("heavymodel", "test")
	return NewGovernment(selector.New(fast, heavy), sentiment.NewLexiconAnalyzer())
}

func govText(t *testing.T, res core.Result) string {
	t.Helper()
	require.True(t, res.Success, "error: %s", res.Error)
	return core.Collect(context.Background(), res.Response)
}

func TestGovernment_IDCardShortcut(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "身份证到期了要怎么换", Request{Options: core.DefaultOptions()}))

	assert.Contains(t, got, "关于身份证办理")
	assert.Contains(t, got, "居民身份证申领登记表")
}

func TestGovernment_ProcedureGuideServedVerbatim(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "医保报销的流程是什么", Request{Options: core.DefaultOptions()}))

	assert.Contains(t, got, "医保报销的办理流程：")
	assert.Contains(t, got, "医疗费用票据原件")
}

func TestGovernment_PolicyAnswer(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "社会保障有什么政策", Request{Options: core.DefaultOptions()}))
	assert.Contains(t, got, "根据《社会保险法》")
}

func TestGovernment_LocationAnswer(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "办护照的地点在哪里", Request{Options: core.DefaultOptions()}))
	assert.Contains(t, got, "出入境管理局")
}

func TestGovernment_NegativeInputGetsEmpathy(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "太失望了，身份证到期了要怎么换", Request{Options: core.DefaultOptions()}))

	assert.True(t, strings.HasPrefix(got, sentiment.NegativePrefix), "negative input must get the empathetic prefix")
	assert.True(t, strings.HasSuffix(got, sentiment.NegativeSuffix))
}

func TestGovernment_NeutralInputIsUnwrapped(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "身份证到期了要怎么换", Request{Options: core.DefaultOptions()}))

	assert.False(t, strings.HasPrefix(got, sentiment.NegativePrefix))
	assert.False(t, strings.HasPrefix(got, sentiment.PositivePrefix))
}

func TestGovernment_GeneralGoesToModel(t *testing.T) {
	a := newGovAgent()
	got := govText(t, a.Process(context.Background(), "我想咨询一下", Request{Options: core.DefaultOptions()}))

	// Echo default reflects the prompt template.
	assert.Contains(t, got, "作为政务服务人员")
}

func TestClassifyGovQuery(t *testing.T) {
	tests := []struct {
		input     string
		queryType string
		category  string
	}{
		{"医保报销怎么办", govProcedureGuide, "社会保障"},
		{"公积金中心在哪里", govLocationQuery, "住房服务"},
		{"个税申报有什么规定", govPolicyQuery, "税务服务"},
		{"我想了解驾驶证考试", govServiceInfo, "证件办理"},
		{"今天有点无聊", govGeneral, ""},
	}
	for _, tt := range tests {
		qt, cat := classifyGovQuery(tt.input)
		assert.Equal(t, tt.queryType, qt, "input: %s", tt.input)
		assert.Equal(t, tt.category, cat, "input: %s", tt.input)
	}
}
