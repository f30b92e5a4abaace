package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/selector"
	"github.com/gewei11/multichat/sentiment"
)

// Government query types.
const (
	govServiceInfo    = "service_info"
	govProcedureGuide = "procedure_guide"
	govPolicyQuery    = "policy_query"
	govLocationQuery  = "location_query"
	govGeneral        = "general_query"
)

type govService struct {
	name    string
	entries []string
}

type govCategory struct {
	name     string
	services []govService
}

var govCategories = []govCategory{
	{name: "证件办理", services: []govService{
		{name: "身份证", entries: []string{"身份证办理", "身份证更换", "身份证挂失", "临时身份证"}},
		{name: "护照", entries: []string{"护照办理", "护照更新", "护照签证", "护照挂失"}},
		{name: "驾驶证", entries: []string{"驾驶证考试", "驾驶证更换", "驾驶证年审", "驾驶证补办"}},
	}},
	{name: "社会保障", services: []govService{
		{name: "医疗保险", entries: []string{"医保报销", "医保缴费", "医保卡办理", "异地就医"}},
		{name: "养老保险", entries: []string{"养老金领取", "养老保险缴费", "退休办理", "养老金计算"}},
		{name: "失业保险", entries: []string{"失业金申领", "失业登记", "再就业培训", "失业保险缴费"}},
	}},
	{name: "住房服务", services: []govService{
		{name: "公积金", entries: []string{"公积金查询", "公积金提取", "公积金贷款", "公积金缴存"}},
		{name: "保障房", entries: []string{"保障房申请", "廉租房", "经济适用房", "公租房"}},
		{name: "不动产登记", entries: []string{"房产证办理", "不动产权证", "房屋过户", "抵押登记"}},
	}},
	{name: "税务服务", services: []govService{
		{name: "个人所得税", entries: []string{"个税申报", "个税计算", "个税退税", "专项附加扣除"}},
		{name: "增值税", entries: []string{"增值税申报", "增值税发票", "增值税退税", "小规模纳税人"}},
		{name: "企业所得税", entries: []string{"企业所得税申报", "企业所得税优惠", "企业所得税计算", "企业所得税减免"}},
	}},
	{name: "出行服务", services: []govService{
		{name: "交通违章", entries: []string{"违章查询", "违章处理", "罚款缴纳", "交通违章申诉"}},
		{name: "公共交通", entries: []string{"公交卡办理", "地铁乘车码", "公共自行车", "老年卡办理"}},
		{name: "机动车", entries: []string{"车辆年检", "车辆过户", "车牌摇号", "机动车报废"}},
	}},
}

// govPolicies are the per-category policy summaries served for policy
// questions.
var govPolicies = map[string]string{
	"证件办理": "证件办理相关政策：根据《中华人民共和国居民身份证法》，公民应当依法申领居民身份证。首次申领居民身份证不收取工本费，换领、补领居民身份证应当缴纳工本费。",
	"社会保障": "社会保障相关政策：根据《社会保险法》，用人单位应当为其职工缴纳基本养老保险、基本医疗保险、工伤保险、失业保险和生育保险费用。个人应当缴纳基本养老保险和基本医疗保险费用。",
	"住房服务": "住房服务相关政策：根据《住房公积金管理条例》，单位和职工个人缴存的住房公积金，属于职工个人所有。职工有权按照规定提取本人住房公积金账户内的存储余额，用于购买、建造、翻建、大修自住住房等。",
	"税务服务": "税务服务相关政策：根据《个人所得税法》，居民个人取得综合所得，按年计算个人所得税；非居民个人取得综合所得，按月或者按次计算个人所得税。纳税人可以享受专项附加扣除。",
	"出行服务": "出行服务相关政策：根据《道路交通安全法》，机动车驾驶人应当按照规定定期参加审验。机动车应当依法进行登记，并按照规定检验合格后，方可上道路行驶。",
}

var govLocations = map[string]string{
	"证件办理": "证件办理地点：身份证可在户籍所在地派出所办理；护照可在出入境管理局办理；驾驶证可在车管所办理。具体地址请查询当地政府网站或拨打政务服务热线。",
	"社会保障": "社会保障服务地点：医疗保险、养老保险和失业保险业务可在当地社保局或社保服务中心办理。许多服务也可通过线上平台办理。",
	"住房服务": "住房服务地点：公积金业务可在住房公积金管理中心办理；保障房申请可在住房保障部门办理；不动产登记可在不动产登记中心办理。",
	"税务服务": "税务服务地点：个人所得税、增值税和企业所得税业务可在当地税务局办理。许多税务服务也可通过电子税务局网站或个人所得税APP办理。",
	"出行服务": "出行服务地点：交通违章处理可在交通管理部门或通过交管12123APP办理；公共交通卡可在指定的服务网点办理；机动车业务可在车管所办理。",
}

// Government answers civic-service questions. Known procedures are served
// verbatim from the guide texts; every answer is tone-adjusted to the
// user's sentiment.
type Government struct {
	base
	selector *selector.Selector
	analyzer sentiment.Analyzer
	adjuster *sentiment.Adjuster
}

// GovernmentOptions configure construction of a Government agent.
type GovernmentOptions struct {
	Logger logging.Logger
}

// NewGovernment builds the government-services agent.
func NewGovernment(sel *selector.Selector, analyzer sentiment.Analyzer, optFns ...func(o *GovernmentOptions)) *Government {
	opts := GovernmentOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Government{
		base:     newBase(core.DomainGovernment, opts.Logger),
		selector: sel,
		analyzer: analyzer,
		adjuster: sentiment.NewAdjuster(),
	}
}

// Process implements Agent.
func (a *Government) Process(ctx context.Context, input string, req Request) core.Result {
	return a.guard(input, func() core.Result {
		senti := a.analyzer.Analyze(ctx, input)
		queryType, category := classifyGovQuery(input)
		a.logger.Debug("government query classified",
			"query_type", queryType, "category", category, "sentiment", string(senti.Label))

		wrap := func(body string) core.Result {
			return core.TextResult(a.adjuster.Adjust(body, senti)).
				WithMeta("query_type", queryType).
				WithMeta("sentiment", string(senti.Label))
		}

		// ID-card renewal is the most common request and has a canonical
		// guide, serve it without a model round trip.
		if strings.Contains(input, "身份证") && containsAny(input, "办理", "更换", "换", "到期") {
			return wrap(govGuides["身份证办理"])
		}

		switch queryType {
		case govProcedureGuide:
			if name, guide := matchGuide(input); guide != "" {
				return wrap(fmt.Sprintf("%s的办理流程：\n\n%s", name, guide))
			}
		case govPolicyQuery:
			if p, ok := govPolicies[category]; ok {
				return wrap(p)
			}
		case govLocationQuery:
			if l, ok := govLocations[category]; ok {
				return wrap(l)
			}
		}

		body := model.CollectText(ctx, a.selector.Generate(ctx, req.Options.ModelOption, model.Request{
			Prompt:  buildGovPrompt(input, queryType, category),
			History: req.History,
			Stream:  true,
		}))
		return wrap(body)
	})
}

func classifyGovQuery(input string) (queryType, category string) {
	for _, c := range govCategories {
		if strings.Contains(input, c.name) {
			category = c.name
			break
		}
	}
	if category == "" {
	outer:
		for _, c := range govCategories {
			for _, s := range c.services {
				if strings.Contains(input, s.name) || containsAny(input, s.entries...) {
					category = c.name
					break outer
				}
			}
		}
	}

	switch {
	case containsAny(input, "怎么办", "如何办理", "流程", "步骤"):
		return govProcedureGuide, category
	case containsAny(input, "在哪里", "地点", "地址", "哪儿"):
		return govLocationQuery, category
	case containsAny(input, "政策", "规定", "法规", "条例"):
		return govPolicyQuery, category
	case category != "":
		return govServiceInfo, category
	default:
		return govGeneral, ""
	}
}

// matchGuide finds the first guide triggered by the input, scanning in the
// fixed guide order.
func matchGuide(input string) (string, string) {
	for _, t := range govGuideTriggers {
		if containsAny(input, t.keywords...) {
			return t.name, govGuides[t.name]
		}
	}
	return "", ""
}

func buildGovPrompt(input, queryType, category string) string {
	var sb strings.Builder
	sb.WriteString("作为政务服务人员，请回答以下问题：\n")
	sb.WriteString(input)
	sb.WriteString("\n\n")

	switch queryType {
	case govServiceInfo:
		if category != "" {
			fmt.Fprintf(&sb, "这是关于%s的咨询，请提供相关服务信息。\n", category)
		}
	case govProcedureGuide:
		sb.WriteString("请详细说明办理流程和所需材料。\n")
	case govPolicyQuery:
		sb.WriteString("请解释相关政策规定和要求。\n")
	case govLocationQuery:
		sb.WriteString("请提供相关服务网点和办理地点信息。\n")
	}

	for _, c := range govCategories {
		if category != "" && c.name != category {
			continue
		}
		var lines []string
		for _, s := range c.services {
			if strings.Contains(input, s.name) || containsAny(input, s.entries...) {
				lines = append(lines, fmt.Sprintf("\n- %s: %s", s.name, strings.Join(s.entries, ", ")))
			}
		}
		if len(lines) > 0 {
			fmt.Fprintf(&sb, "\n参考%s相关服务：", c.name)
			for _, l := range lines {
				sb.WriteString(l)
			}
		}
	}

	sb.WriteString("\n请以专业、耐心、友善的态度回答，确保信息准确完整。")
	return sb.String()
}
