// Package router maps raw user text plus session flags to a domain key
// using an ordered rule table of keyword sets and regex patterns. Routing is
// a total function: it never fails at runtime, and absence of a match is the
// default-domain outcome rather than an error. Malformed patterns are a
// configuration error caught when the table is built.
package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
)

// Rule binds one domain to its trigger keywords and patterns. Rules are
// evaluated in declaration order; within a rule, keyword match takes
// precedence over pattern match. EnabledWhen gates the whole rule: a
// disabled domain is skipped unconditionally, however keyword-dense the
// input. A nil predicate means always enabled.
type Rule struct {
	Domain      string
	Keywords    []string
	Patterns    []*regexp.Regexp
	EnabledWhen func(core.Options) bool
}

// CompileRule builds a rule from raw pattern sources, surfacing malformed
// regexes as load-time configuration errors.
func CompileRule(domain string, keywords, patterns []string, enabledWhen func(core.Options) bool) (Rule, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, src := range patterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: invalid pattern %q: %w", domain, src, err)
		}
		compiled = append(compiled, re)
	}
	return Rule{Domain: domain, Keywords: keywords, Patterns: compiled, EnabledWhen: enabledWhen}, nil
}

// Router holds the immutable ordered rule table.
type Router struct {
	rules  []Rule
	logger logging.Logger
}

// New constructs a router over the given rule table. The table is copied;
// later mutation of the caller's slice has no effect.
func New(rules []Rule, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Router{rules: owned, logger: logger}
}

// Route returns the domain key for the input. First matching rule wins;
// when no rule fires, a literal weather trigger is checked (still gated by
// its flag) before falling back to the conversation domain.
func (r *Router) Route(text string, opts core.Options) string {
	for _, rule := range r.rules {
		if rule.EnabledWhen != nil && !rule.EnabledWhen(opts) {
			continue
		}
		if matchKeywords(text, rule.Keywords) {
			r.logger.Info("routed by keyword", "domain", rule.Domain)
			return rule.Domain
		}
		if matchPatterns(text, rule.Patterns) {
			r.logger.Info("routed by pattern", "domain", rule.Domain)
			return rule.Domain
		}
	}
	if strings.Contains(text, "天气") && opts.WeatherEnabled {
		r.logger.Info("routed by weather trigger word")
		return core.DomainWeather
	}
	r.logger.Info("routed by default", "domain", core.DomainConversation)
	return core.DomainConversation
}

func matchKeywords(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func matchPatterns(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
