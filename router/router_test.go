package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewei11/multichat/core"
)

func defaultOpts() core.Options { return core.DefaultOptions() }

func TestRoute_KeywordMatch(t *testing.T) {
	r := New(DefaultRules(), nil)

	tests := []struct {
		input  string
		domain string
	}{
		{"北京天气怎么样", core.DomainWeather},
		{"我想买一部手机", core.DomainEcommerce},
		{"帮我解这个方程", core.DomainEducation},
		{"身份证到期了怎么办", core.DomainGovernment},
		{"你好", core.DomainConversation},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.domain, r.Route(tt.input, defaultOpts()), "input: %s", tt.input)
	}
}

func TestRoute_PatternMatch(t *testing.T) {
	r := New(DefaultRules(), nil)

	assert.Equal(t, core.DomainEcommerce, r.Route("2000元以下有什么好东西", defaultOpts()))
	assert.Equal(t, core.DomainEducation, r.Route("12+34等于多少", defaultOpts()))
	assert.Equal(t, core.DomainGovernment, r.Route("我要办理社保", defaultOpts()))
}

func TestRoute_DisabledWeatherNeverRouted(t *testing.T) {
	r := New(DefaultRules(), nil)
	opts := defaultOpts()
	opts.WeatherEnabled = false

	// Keyword-dense weather input must not reach the weather domain when
	// the flag is off, including the secondary trigger word.
	assert.Equal(t, core.DomainConversation, r.Route("今天天气怎么样", opts))
	assert.Equal(t, core.DomainConversation, r.Route("天气", opts))
}

func TestRoute_SecondaryWeatherTrigger(t *testing.T) {
	// A rule table without a weather rule still routes on the literal
	// trigger word, gated by the same flag.
	r := New([]Rule{}, nil)

	assert.Equal(t, core.DomainWeather, r.Route("天气", defaultOpts()))

	opts := defaultOpts()
	opts.WeatherEnabled = false
	assert.Equal(t, core.DomainConversation, r.Route("天气", opts))
}

func TestRoute_IsTotal(t *testing.T) {
	r := New(DefaultRules(), nil)
	for _, input := range []string{"", "   ", "☃", "asdfghjkl", "今天心情不错"} {
		domain := r.Route(input, defaultOpts())
		assert.NotEmpty(t, domain, "every input must route somewhere: %q", input)
	}
}

func TestCompileRule_BadPattern(t *testing.T) {
	_, err := CompileRule("x", nil, []string{`([`}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestRoute_RuleOrderWins(t *testing.T) {
	first, err := CompileRule("first", []string{"共享"}, nil, nil)
	require.NoError(t, err)
	second, err := CompileRule("second", []string{"共享"}, nil, nil)
	require.NoError(t, err)

	r := New([]Rule{first, second}, nil)
	assert.Equal(t, "first", r.Route("共享词输入", defaultOpts()))
}
