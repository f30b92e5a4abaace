package sentiment

import "fmt"

// Tone template fragments. Neutral is an exact pass-through: no prefix and
// no suffix, so an unadjusted response compares byte-equal.
const (
	NegativePrefix = "我理解您的心情，让我来帮您解决这个问题。\n"
	NegativeSuffix = "\n\n如果您还有任何疑问，随时都可以询问我，我会尽最大努力为您提供帮助。"
	PositivePrefix = "很高兴看到您对这件事这么有热情！\n"
	PositiveSuffix = "\n\n希望这些信息对您有帮助，祝您一切顺利！"
)

// Adjuster wraps a response body in a tone template selected by the
// sentiment label: empathetic for negative, affirming for positive and a
// pass-through for neutral (and for error-tagged results).
type Adjuster struct{}

// NewAdjuster constructs an Adjuster.
func NewAdjuster() *Adjuster { return &Adjuster{} }

// Adjust returns the tone-wrapped response.
func (*Adjuster) Adjust(response string, res Result) string {
	if res.Err != "" {
		return response
	}
	switch res.Label {
	case Negative:
		return NegativePrefix + response + NegativeSuffix
	case Positive:
		return PositivePrefix + response + PositiveSuffix
	default:
		return response
	}
}

// FormatReport renders an analysis summary for UIs that show it alongside
// the answer.
func FormatReport(res Result) string {
	if res.Err != "" {
		return "情感分析暂时不可用：" + res.Err
	}
	label := map[Label]string{Positive: "正面", Negative: "负面", Neutral: "中性"}[res.Label]
	report := fmt.Sprintf("情感分析结果：\n情感倾向: %s\n置信度: %.0f%%", label, res.Confidence*100)
	if p, ok := res.Detail["positive_prob"]; ok {
		report += fmt.Sprintf("\n积极概率: %.0f%%", p*100)
	}
	if n, ok := res.Detail["negative_prob"]; ok {
		report += fmt.Sprintf("\n消极概率: %.0f%%", n*100)
	}
	return report
}
