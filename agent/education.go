package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/selector"
)

// Education query types.
const (
	eduSubjectInfo      = "subject_info"
	eduProblemSolving   = "problem_solving"
	eduLearningResource = "learning_resource"
	eduGeneral          = "general"
)

type eduTopic struct {
	name    string
	entries []string
}

type eduSubject struct {
	name   string
	weight float64
	topics []eduTopic
}

// eduSubjects is the curriculum index. Declaration order is the tie-break
// for equal classification scores, so it is stable across runs.
var eduSubjects = []eduSubject{
	{name: "数学", weight: 1.0, topics: []eduTopic{
		{name: "代数", entries: []string{"方程式", "函数", "多项式", "矩阵"}},
		{name: "几何", entries: []string{"三角形", "圆", "椭圆", "向量"}},
		{name: "微积分", entries: []string{"导数", "积分", "极限", "微分方程"}},
	}},
	{name: "物理", weight: 1.0, topics: []eduTopic{
		{name: "力学", entries: []string{"牛顿定律", "动量", "能量守恒"}},
		{name: "电磁学", entries: []string{"电场", "磁场", "电磁波"}},
		{name: "热力学", entries: []string{"熵", "热力学定律", "热传导"}},
	}},
	{name: "化学", weight: 1.0, topics: []eduTopic{
		{name: "有机化学", entries: []string{"烃类", "醇", "酸"}},
		{name: "无机化学", entries: []string{"元素周期表", "化学键", "氧化还原"}},
		{name: "物理化学", entries: []string{"化学平衡", "反应动力学", "热化学"}},
	}},
	{name: "语文", weight: 0.9, topics: []eduTopic{
		{name: "古代文学", entries: []string{"诗词", "散文", "小说"}},
		{name: "现代文学", entries: []string{"小说", "散文", "戏剧"}},
		{name: "语法修辞", entries: []string{"修辞手法", "句法分析", "词汇"}},
	}},
	{name: "英语", weight: 0.9, topics: []eduTopic{
		{name: "语法", entries: []string{"时态", "语态", "从句"}},
		{name: "词汇", entries: []string{"同义词", "反义词", "词根词缀"}},
		{name: "阅读", entries: []string{"理解", "推断", "主旨"}},
	}},
}

var eduResources = map[string][]string{
	"数学": {
		"《数学分析》 - 陈纪修、於崇华、金路",
		"《高等代数》 - 北京大学数学系",
		"可汗学院 (Khan Academy) - 免费数学视频教程",
		"3Blue1Brown - YouTube数学可视化频道",
	},
	"物理": {
		"《费曼物理学讲义》 - 理查德·费曼",
		"《大学物理学》 - 赵凯华、陈熙谋",
		"MIT开放课程 - 物理系列",
		"PhET互动模拟 - 物理实验模拟平台",
	},
	"化学": {
		"《普通化学原理》 - 华彤文等",
		"《有机化学》 - 胡宏纹",
		"化学之美 - 科普网站",
		"Royal Society of Chemistry - 化学资源网站",
	},
	"语文": {
		"《古代汉语》 - 王力",
		"《文学理论教程》 - 童庆炳",
		"中国诗词大会 - 电视节目",
		"古诗文网 - 古代文学资源库",
	},
	"英语": {
		"《新概念英语》系列",
		"《剑桥英语语法》 - Raymond Murphy",
		"BBC Learning English - 英语学习网站",
		"TED Talks - 英语演讲视频",
	},
	"通用": {
		"中国大学MOOC - 多学科在线课程平台",
		"学堂在线 - 清华大学创办的MOOC平台",
		"Coursera - 国际知名在线教育平台",
		"网易公开课 - 多领域视频教程",
	},
}

// Education answers study questions. Subject indexes and resource lists are
// served straight from the curriculum tables; open questions go to a model
// with matching knowledge snippets folded into the prompt.
type Education struct {
	base
	selector *selector.Selector
}

// EducationOptions configure construction of an Education agent.
type EducationOptions struct {
	Logger logging.Logger
}

// NewEducation builds the education agent.
func NewEducation(sel *selector.Selector, optFns ...func(o *EducationOptions)) *Education {
	opts := EducationOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Education{base: newBase(core.DomainEducation, opts.Logger), selector: sel}
}

// Process implements Agent.
func (a *Education) Process(ctx context.Context, input string, req Request) core.Result {
	return a.guard(input, func() core.Result {
		queryType, subject := a.classify(input)
		a.logger.Debug("education query classified", "query_type", queryType, "subject", subject)

		switch queryType {
		case eduSubjectInfo:
			if info := subjectInfo(subject); info != "" {
				return core.TextResult(info).WithMeta("subject", subject).WithMeta("query_type", queryType)
			}
		case eduLearningResource:
			return core.TextResult(recommendResources(subject)).
				WithMeta("subject", subject).WithMeta("query_type", queryType)
		}

		// No tone wrap on this path, so the model answer streams through.
		stream := model.Fragments(ctx, a.selector.Generate(ctx, req.Options.ModelOption, model.Request{
			Prompt:  a.buildPrompt(input, queryType, subject),
			History: req.History,
			Stream:  true,
		}))
		return core.StreamResult(stream).WithMeta("subject", subject).WithMeta("query_type", queryType)
	})
}

// classify scores each subject by the weighted count of its index terms
// present in the query. Ties keep the earlier subject.
func (a *Education) classify(input string) (queryType, subject string) {
	best, bestScore := "通用", 0.0
	for _, s := range eduSubjects {
		score := 0.0
		if strings.Contains(input, s.name) {
			score += s.weight
		}
		for _, t := range s.topics {
			if strings.Contains(input, t.name) {
				score += s.weight
			}
			for _, e := range t.entries {
				if strings.Contains(input, e) {
					score += s.weight
				}
			}
		}
		if score > bestScore {
			best, bestScore = s.name, score
		}
	}

	switch {
	case containsAny(input, "什么是", "概念", "定义", "介绍"):
		queryType = eduSubjectInfo
	case containsAny(input, "问题", "解答", "怎么做", "如何解"):
		queryType = eduProblemSolving
	case containsAny(input, "资源", "教材", "书籍", "视频", "推荐"):
		queryType = eduLearningResource
	default:
		queryType = eduGeneral
	}
	return queryType, best
}

func (a *Education) buildPrompt(input, queryType, subject string) string {
	var sb strings.Builder
	sb.WriteString("作为一个专业的教育辅导助手，请帮助解答以下问题:\n")
	sb.WriteString(input)
	sb.WriteString("\n")

	switch queryType {
	case eduSubjectInfo:
		sb.WriteString("\n请详细解释相关概念，包括定义、特点和应用场景。")
	case eduProblemSolving:
		sb.WriteString("\n请提供详细的解题思路和步骤。")
	case eduLearningResource:
		sb.WriteString("\n请推荐相关的学习资源和参考材料。")
	}

	for _, s := range eduSubjects {
		if subject != "通用" && s.name != subject {
			continue
		}
		var lines []string
		for _, t := range s.topics {
			if strings.Contains(input, t.name) || containsAny(input, t.entries...) {
				lines = append(lines, fmt.Sprintf("\n- %s: %s", t.name, strings.Join(t.entries, ", ")))
			}
		}
		if len(lines) > 0 {
			sb.WriteString(fmt.Sprintf("\n参考%s相关知识：", s.name))
			for _, l := range lines {
				sb.WriteString(l)
			}
		}
	}
	return sb.String()
}

// subjectInfo renders the curriculum index of one subject, empty when the
// subject is unknown so the caller can fall through to the model.
func subjectInfo(subject string) string {
	for _, s := range eduSubjects {
		if s.name != subject {
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "关于%s学科，它主要包含以下领域：\n\n", subject)
		for _, t := range s.topics {
			fmt.Fprintf(&sb, "- %s：%s\n", t.name, strings.Join(t.entries, ", "))
		}
		fmt.Fprintf(&sb, "\n您对%s的哪个具体领域感兴趣？我可以提供更详细的信息。", subject)
		return sb.String()
	}
	return ""
}

func recommendResources(subject string) string {
	list, ok := eduResources[subject]
	if !ok {
		subject, list = "通用", eduResources["通用"]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "以下是%s学科的推荐学习资源：\n\n", subject)
	for _, r := range list {
		fmt.Fprintf(&sb, "- %s\n", r)
	}
	sb.WriteString("\n希望这些资源对您的学习有所帮助！如果需要特定领域的资源，请告诉我。")
	return sb.String()
}
