package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
)

// Request carries the per-turn context the dispatcher hands to an agent.
type Request struct {
	Options core.Options
	History []core.Turn
}

// Agent is the contract every domain agent implements. Process consumes one
// user input and returns a Result; it must not panic and must not fail for
// knowledge misses, only for invalid input or internal faults.
type Agent interface {
	Domain() string
	Process(ctx context.Context, input string, req Request) core.Result
}

// base bundles the identity and fault handling shared by all agents.
type base struct {
	domain string
	logger logging.Logger
}

func newBase(domain string, logger logging.Logger) base {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return base{domain: domain, logger: logger}
}

// Domain reports which routing domain this agent serves.
func (b base) Domain() string { return b.domain }

// guard validates the input, runs fn and converts a panic into a failed
// result so one bad turn cannot take the dispatcher down. ProcessingTime is
// stamped on every outcome.
func (b base) guard(input string, fn func() core.Result) (res core.Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("agent fault", "domain", b.domain, "panic", fmt.Sprint(r))
			res = core.FailureResult(fmt.Sprintf("处理查询失败: %v", r))
		}
		res.ProcessingTime = time.Since(start)
		if res.Meta == nil {
			res = res.WithMeta("domain", b.domain)
		} else if _, ok := res.Meta["domain"]; !ok {
			res = res.WithMeta("domain", b.domain)
		}
	}()
	if strings.TrimSpace(input) == "" {
		return core.FailureResult("输入必须是非空文本")
	}
	return fn()
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// matchCategory returns the first candidate found in text, preferring longer
// names so "笔记本电脑" wins over an embedded "电脑"-like overlap. Equal
// lengths keep the caller's declaration order.
func matchCategory(text string, candidates []string) string {
	ordered := make([]string, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i]) > utf8.RuneCountInString(ordered[j])
	})
	for _, c := range ordered {
		if strings.Contains(text, c) {
			return c
		}
	}
	return ""
}
