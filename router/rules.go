package router

import (
	"regexp"

	"github.com/gewei11/multichat/core"
)

// DefaultRules returns the built-in routing table. Order matters: more
// specific domains come before the conversational catch-all, and the first
// matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Domain:   core.DomainWeather,
			Keywords: []string{"天气", "气温", "温度", "下雨", "阴天", "晴天", "多云"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?:查询|查看|想知道|告诉我).*?(?:的)?天气`),
				regexp.MustCompile(`天气(?:怎么样|如何)`),
			},
			EnabledWhen: func(o core.Options) bool { return o.WeatherEnabled },
		},
		{
			Domain:   core.DomainEcommerce,
			Keywords: []string{"购物", "商品", "价格", "订单", "购买", "电商", "手机", "电脑", "耳机", "平板"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?:想买|推荐|查询|搜索).*?(?:商品|产品|手机|电脑|耳机|平板)`),
				regexp.MustCompile(`\d+(?:到\d+)?元.*?(?:以下|以内|之间)`),
				regexp.MustCompile(`(?:购物指南|选购指南|购买建议)`),
				regexp.MustCompile(`(?:查询|查看).*?订单`),
			},
		},
		{
			Domain:   core.DomainEducation,
			Keywords: []string{"数学", "计算", "方程", "函数", "几何", "代数", "微积分", "物理", "化学", "教育"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?:计算|求解|证明|解方程)`),
				regexp.MustCompile(`\d+[+\-*/^]\d+`),
				regexp.MustCompile(`(?:数学|物理|化学).*?(?:问题|题目|公式)`),
			},
		},
		{
			Domain:   core.DomainGovernment,
			Keywords: []string{"政务", "证件", "社保", "医保", "公积金", "税务", "户口", "驾照", "身份证", "护照"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?:办理|申请|查询).*?(?:证件|社保|医保|公积金|税务)`),
				regexp.MustCompile(`(?:政府|政务).*?(?:服务|咨询)`),
			},
		},
		{
			Domain:   core.DomainConversation,
			Keywords: []string{"你好", "请问", "帮我", "谢谢"},
		},
	}
}
