// Package sentiment defines the sentiment-collaborator contract, a local
// lexicon-based analyzer, tone-template response adjustment and a bounded
// rolling tracker for mood-trend detection.
//
// The Analyze contract never raises past this boundary: provider failures
// come back as an error-tagged neutral result, because two domain agents
// wrap every turn with it and must not break on a collaborator outage.
package sentiment

import (
	"context"
	"strings"
)

// Label classifies the overall polarity of an input.
type Label string

// The three fixed polarity classes.
const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Result is produced fresh per input turn and never cached across turns.
// Detail carries provider-specific probabilities for display; Err is set
// when the provider failed and Label defaulted to Neutral.
type Result struct {
	Label      Label              `json:"label"`
	Confidence float64            `json:"confidence"`
	Detail     map[string]float64 `json:"detail,omitempty"`
	Err        string             `json:"error,omitempty"`
}

// Analyzer is the collaborator contract for sentiment classification.
type Analyzer interface {
	Analyze(ctx context.Context, text string) Result
}

// ErrorResult tags a provider failure without raising it.
func ErrorResult(err error) Result {
	return Result{Label: Neutral, Confidence: 0, Err: err.Error()}
}

// LexiconAnalyzer scores polarity by counting matches against small
// positive/negative word lists. It stands in for a remote sentiment API and
// is always available.
type LexiconAnalyzer struct {
	positive []string
	negative []string
}

// NewLexiconAnalyzer constructs the analyzer with the built-in word lists.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{
		positive: []string{
			"开心", "高兴", "快乐", "满意", "喜欢", "爱", "感谢", "谢谢", "好", "棒",
			"优秀", "赞", "厉害", "不错",
		},
		negative: []string{
			"不开心", "难过", "伤心", "痛苦", "失望", "生气", "愤怒", "讨厌", "烦",
			"不好", "差", "糟糕", "坏", "不行",
		},
	}
}

// Analyze implements Analyzer.
func (a *LexiconAnalyzer) Analyze(_ context.Context, text string) Result {
	pos := countMatches(text, a.positive)
	neg := countMatches(text, a.negative)
	total := pos + neg
	if total == 0 {
		return Result{
			Label:      Neutral,
			Confidence: 0.6,
			Detail:     map[string]float64{"positive_prob": 0.33, "negative_prob": 0.33},
		}
	}
	posProb := float64(pos) / float64(total)
	detail := map[string]float64{"positive_prob": posProb, "negative_prob": 1 - posProb}
	switch {
	case posProb > 0.6:
		return Result{Label: Positive, Confidence: clamp(posProb+0.2), Detail: detail}
	case posProb < 0.4:
		return Result{Label: Negative, Confidence: clamp(1 - posProb + 0.2), Detail: detail}
	default:
		return Result{Label: Neutral, Confidence: 0.6, Detail: detail}
	}
}

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func clamp(v float64) float64 {
	if v > 0.99 {
		return 0.99
	}
	return v
}
