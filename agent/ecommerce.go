package agent

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/selector"
)

// Ecommerce query types.
const (
	shopOrderQuery     = "order_query"
	shopSearch         = "product_search"
	shopRecommendation = "product_recommendation"
	shopGuide          = "shopping_guide"
	shopGeneral        = "general"
)

// Product is one catalog entry.
type Product struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Brand  string  `json:"brand"`
	Price  int     `json:"price"`
	Rating float64 `json:"rating"`
	Stock  int     `json:"stock"`
}

// Order is one fulfilment record.
type Order struct {
	Items  []OrderItem `json:"products"`
	Status string      `json:"status"`
	Total  int         `json:"total"`
}

// OrderItem references a catalog product inside an order.
type OrderItem struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// PriceRange is a parsed budget constraint, inclusive on both ends.
type PriceRange struct {
	Min int
	Max int
}

type shopCategory struct {
	name     string
	products []Product
}

// shopCatalog is the demo catalog. Slice order is the stable tie-break for
// rankings, so entries must not be reordered casually.
var shopCatalog = []shopCategory{
	{name: "手机", products: []Product{
		{ID: "p001", Name: "智能手机A", Brand: "品牌X", Price: 2999, Rating: 4.5, Stock: 100},
		{ID: "p002", Name: "智能手机B", Brand: "品牌Y", Price: 3999, Rating: 4.7, Stock: 50},
		{ID: "p003", Name: "智能手机C", Brand: "品牌Z", Price: 1999, Rating: 4.2, Stock: 200},
	}},
	{name: "笔记本电脑", products: []Product{
		{ID: "l001", Name: "轻薄本A", Brand: "品牌X", Price: 5999, Rating: 4.6, Stock: 30},
		{ID: "l002", Name: "游戏本B", Brand: "品牌Y", Price: 7999, Rating: 4.8, Stock: 20},
		{ID: "l003", Name: "商务本C", Brand: "品牌Z", Price: 4999, Rating: 4.4, Stock: 50},
	}},
	{name: "耳机", products: []Product{
		{ID: "h001", Name: "无线耳机A", Brand: "品牌X", Price: 999, Rating: 4.3, Stock: 200},
		{ID: "h002", Name: "降噪耳机B", Brand: "品牌Y", Price: 1499, Rating: 4.6, Stock: 100},
		{ID: "h003", Name: "运动耳机C", Brand: "品牌Z", Price: 299, Rating: 4.1, Stock: 300},
	}},
	{name: "平板电脑", products: []Product{
		{ID: "t001", Name: "平板A", Brand: "品牌X", Price: 3499, Rating: 4.5, Stock: 50},
		{ID: "t002", Name: "平板B", Brand: "品牌Y", Price: 4499, Rating: 4.7, Stock: 30},
		{ID: "t003", Name: "平板C", Brand: "品牌Z", Price: 2499, Rating: 4.3, Stock: 100},
	}},
}

var shopOrders = map[string]Order{
	"o001": {Items: []OrderItem{{ProductID: "p001", Quantity: 1}}, Status: "已发货", Total: 2999},
	"o002": {Items: []OrderItem{{ProductID: "h002", Quantity: 1}}, Status: "待付款", Total: 1499},
	"o003": {Items: []OrderItem{{ProductID: "l002", Quantity: 1}}, Status: "已完成", Total: 7999},
}

var (
	orderIDRe      = regexp.MustCompile(`o\d{3}`)
	priceBelowRe   = regexp.MustCompile(`(\d+)元以?下`)
	priceBetweenRe = regexp.MustCompile(`(\d+)[-~到至](\d+)元`)
)

// Ecommerce handles shopping queries against the in-memory catalog and
// order book, falling back to a model for everything the tables cannot
// answer.
type Ecommerce struct {
	base
	selector *selector.Selector
}

// EcommerceOptions configure construction of an Ecommerce agent.
type EcommerceOptions struct {
	Logger logging.Logger
}

// NewEcommerce builds the e-commerce agent.
func NewEcommerce(sel *selector.Selector, optFns ...func(o *EcommerceOptions)) *Ecommerce {
	opts := EcommerceOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Ecommerce{base: newBase(core.DomainEcommerce, opts.Logger), selector: sel}
}

// Process implements Agent.
func (a *Ecommerce) Process(ctx context.Context, input string, req Request) core.Result {
	return a.guard(input, func() core.Result {
		queryType, category := classifyShopQuery(input)
		a.logger.Debug("ecommerce query classified", "query_type", queryType, "category", category)

		var response string
		switch queryType {
		case shopOrderQuery:
			response = queryOrder(input)
		case shopSearch:
			response = searchProducts(category, input)
		case shopRecommendation:
			response = recommendProducts(category, input)
		case shopGuide:
			response = shoppingGuide(category)
		default:
			stream := model.Fragments(ctx, a.selector.Generate(ctx, req.Options.ModelOption, model.Request{
				Prompt:  fmt.Sprintf("作为电商助手，请回答用户的问题：%s\n回答要求：\n1. 专业且友好\n2. 提供具体的帮助和建议\n3. 介绍可用的功能（如搜索商品、查询订单等）", input),
				System:  "你是一个专业的电商客服助手，擅长解答购物、物流、售后等问题。请提供准确、专业的回答。",
				History: req.History,
				Stream:  true,
			}))
			return core.StreamResult(stream).WithMeta("query_type", queryType)
		}
		return core.TextResult(response).WithMeta("query_type", queryType)
	})
}

func classifyShopQuery(input string) (queryType, category string) {
	if containsAny(input, "订单", "物流", "发货") || orderIDRe.MatchString(strings.ToLower(input)) {
		return shopOrderQuery, ""
	}

	names := make([]string, len(shopCatalog))
	for i, c := range shopCatalog {
		names[i] = c.name
	}
	category = matchCategory(input, names)

	switch {
	case containsAny(input, "推荐", "有什么好", "哪个好"):
		queryType = shopRecommendation
	case containsAny(input, "搜索", "查找", "找", "有没有"):
		queryType = shopSearch
	case containsAny(input, "怎么选", "如何挑选", "购买建议"):
		queryType = shopGuide
	default:
		queryType = shopGeneral
	}
	return queryType, category
}

func categoryProducts(category string) []Product {
	for _, c := range shopCatalog {
		if c.name == category {
			out := make([]Product, len(c.products))
			copy(out, c.products)
			return out
		}
	}
	return nil
}

func productByID(id string) (Product, string, bool) {
	for _, c := range shopCatalog {
		for _, p := range c.products {
			if p.ID == id {
				return p, c.name, true
			}
		}
	}
	return Product{}, "", false
}

// queryOrder resolves an order number from the text. A missing or unknown
// number is an answered turn, not a failure.
func queryOrder(input string) string {
	id := orderIDRe.FindString(strings.ToLower(input))
	if id == "" {
		return "抱歉，没有找到订单号，请提供正确的订单号。"
	}
	order, ok := shopOrders[id]
	if !ok {
		return fmt.Sprintf("抱歉，未找到订单 %s 的信息。", id)
	}

	var items []string
	for _, it := range order.Items {
		if p, _, ok := productByID(it.ProductID); ok {
			items = append(items, fmt.Sprintf("%s x %d", p.Name, it.Quantity))
		}
	}

	response := fmt.Sprintf("订单号: %s\n状态: %s\n商品: %s\n总金额: ¥%d\n\n",
		id, order.Status, strings.Join(items, ", "), order.Total)
	switch order.Status {
	case "已发货":
		response += "您的订单已发货，请耐心等待送达。"
	case "待付款":
		response += "订单尚未支付，请及时完成付款。"
	case "已完成":
		response += "订单已完成，如有问题请联系客服。"
	}
	return response
}

// ParsePriceRange extracts a budget constraint like "2000元以下" or
// "1000到3000元". Nil means no constraint was mentioned.
func ParsePriceRange(input string) *PriceRange {
	if m := priceBelowRe.FindStringSubmatch(input); m != nil {
		return &PriceRange{Min: 0, Max: atoiShop(m[1])}
	}
	if m := priceBetweenRe.FindStringSubmatch(input); m != nil {
		return &PriceRange{Min: atoiShop(m[1]), Max: atoiShop(m[2])}
	}
	return nil
}

func atoiShop(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func filterByPrice(products []Product, pr *PriceRange) []Product {
	if pr == nil {
		return products
	}
	var out []Product
	for _, p := range products {
		if pr.Min <= p.Price && p.Price <= pr.Max {
			out = append(out, p)
		}
	}
	return out
}

// valueScore is the composite used to rank by value for money: price
// position, rating, brand baseline, stock coverage and a rating-per-price
// efficiency term. Weights sum to 1.
func valueScores(products []Product) []float64 {
	minPrice, maxPrice := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	scores := make([]float64, len(products))
	for i, p := range products {
		priceScore := 1.0
		if maxPrice != minPrice {
			priceScore = 1 - float64(p.Price-minPrice)/float64(maxPrice-minPrice)
		}
		ratingScore := p.Rating / 5.0
		brandScore := 0.8
		stockScore := float64(p.Stock) / 100
		if stockScore > 1 {
			stockScore = 1
		}
		efficiency := ratingScore / (float64(p.Price) / 1000)
		scores[i] = priceScore*0.3 + ratingScore*0.2 + brandScore*0.2 + stockScore*0.1 + efficiency*0.2
	}
	return scores
}

// rankByValue orders products by descending value score. The sort is stable
// over catalog order, so equal scores keep their insertion position and the
// ranking is deterministic for an unchanged candidate set.
func rankByValue(products []Product) ([]Product, []float64) {
	ranked := make([]Product, len(products))
	copy(ranked, products)
	scores := valueScores(ranked)

	idx := make([]int, len(ranked))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return scores[idx[i]] > scores[idx[j]] })

	outP := make([]Product, len(ranked))
	outS := make([]float64, len(ranked))
	for i, j := range idx {
		outP[i], outS[i] = ranked[j], scores[j]
	}
	return outP, outS
}

func searchProducts(category, input string) string {
	if category == "" {
		return "请告诉我您想搜索哪类商品？我们有手机、笔记本电脑、耳机和平板电脑等类别。"
	}
	products := categoryProducts(category)
	if len(products) == 0 {
		return fmt.Sprintf("抱歉，未找到%s类别的商品。", category)
	}

	// Phones get the value-for-money analysis treatment.
	if category == "手机" {
		ranked, scores := rankByValue(products)
		var sb strings.Builder
		fmt.Fprintf(&sb, "为您找到%d款%s，按性价比从高到低排序：\n\n", len(ranked), category)
		for i, p := range ranked {
			fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, p.Name, p.Brand)
			fmt.Fprintf(&sb, "   价格：¥%d\n", p.Price)
			fmt.Fprintf(&sb, "   评分：%.1f星\n", p.Rating)
			fmt.Fprintf(&sb, "   库存：%d件\n", p.Stock)
			fmt.Fprintf(&sb, "   性价比指数：%.2f\n", scores[i])
			sb.WriteString("   -------------\n")
		}
		return sb.String()
	}

	products = filterByPrice(products, ParsePriceRange(input))
	if len(products) == 0 {
		return fmt.Sprintf("抱歉，没有找到符合条件的%s。", category)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "为您找到以下%s：\n\n", category)
	for _, p := range products {
		fmt.Fprintf(&sb, "- %s\n", p.Name)
		fmt.Fprintf(&sb, "  品牌：%s\n", p.Brand)
		fmt.Fprintf(&sb, "  价格：¥%d\n", p.Price)
		fmt.Fprintf(&sb, "  评分：%.1f\n", p.Rating)
		fmt.Fprintf(&sb, "  库存：%d\n\n", p.Stock)
	}
	return sb.String()
}

func recommendProducts(category, input string) string {
	if category == "" {
		return "请告诉我您对哪类商品感兴趣？我们可以推荐手机、笔记本电脑、耳机和平板电脑等。"
	}
	products := categoryProducts(category)
	if len(products) == 0 {
		return fmt.Sprintf("抱歉，暂时没有%s的推荐。", category)
	}

	pr := ParsePriceRange(input)
	products = filterByPrice(products, pr)
	if len(products) == 0 {
		return fmt.Sprintf("抱歉，没有找到符合价格要求的%s推荐。", category)
	}

	if pr != nil {
		// Budget given: within budget the user cares about quality first.
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	} else {
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Rating != products[j].Rating {
				return products[i].Rating > products[j].Rating
			}
			return products[i].Price < products[j].Price
		})
	}

	promo := containsAny(input, "促销", "优惠", "活动")

	var sb strings.Builder
	fmt.Fprintf(&sb, "根据您的需求，为您推荐以下%s", category)
	if promo {
		sb.WriteString("促销商品")
	} else {
		sb.WriteString("商品")
	}
	sb.WriteString("：\n\n")

	top := products
	if len(top) > 3 {
		top = top[:3]
	}
	for _, p := range top {
		fmt.Fprintf(&sb, "▶ %s\n", p.Name)
		fmt.Fprintf(&sb, "  - 品牌：%s\n", p.Brand)
		fmt.Fprintf(&sb, "  - 价格：¥%d", p.Price)
		if promo {
			if p.Price >= 1000 {
				fmt.Fprintf(&sb, " (限时优惠：立减¥%d)", p.Price/10)
			} else {
				sb.WriteString(" (限时9折优惠)")
			}
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  - 评分：%.1f分\n", p.Rating)
		fmt.Fprintf(&sb, "  - 库存：%d件\n", p.Stock)
		fmt.Fprintf(&sb, "  - 特点：%s\n\n", productFeatures(p, category))
	}

	if pr != nil {
		fmt.Fprintf(&sb, "\n以上是%d元以下的%s推荐，如果预算可以提高，还有更多优选商品供您参考。", pr.Max, category)
	}
	if promo {
		sb.WriteString("\n\n当前促销活动：\n")
		sb.WriteString("1. 千元以上商品立减10%\n")
		sb.WriteString("2. 千元以下商品9折优惠\n")
		sb.WriteString("3. 活动时间：限时特惠，欢迎咨询具体详情")
	}
	return sb.String()
}

func productFeatures(p Product, category string) string {
	var features []string

	switch {
	case p.Rating >= 4.7:
		features = append(features, "好评如潮")
	case p.Rating >= 4.5:
		features = append(features, "好评优选")
	case p.Rating >= 4.3:
		features = append(features, "用户认可")
	}

	if siblings := categoryProducts(category); len(siblings) > 0 {
		sum := 0
		for _, s := range siblings {
			sum += s.Price
		}
		avg := float64(sum) / float64(len(siblings))
		switch {
		case float64(p.Price) >= avg*1.5:
			features = append(features, "高端定位")
		case float64(p.Price) <= avg*0.7:
			features = append(features, "性价比高")
		case avg*0.7 < float64(p.Price) && float64(p.Price) < avg*1.2:
			features = append(features, "主流价位")
		}
	}

	switch {
	case p.Stock > 200:
		features = append(features, "库存充足")
	case p.Stock > 50:
		features = append(features, "现货在售")
	case p.Stock > 20:
		features = append(features, "库存紧张")
	default:
		features = append(features, "即将售罄")
	}

	switch p.Brand {
	case "品牌X":
		features = append(features, "科技领先")
	case "品牌Y":
		features = append(features, "品质保证")
	case "品牌Z":
		features = append(features, "高性价比")
	}

	switch category {
	case "手机":
		features = append(features, "智能设备")
	case "笔记本电脑":
		features = append(features, "办公娱乐")
	case "耳机":
		features = append(features, "音频设备")
	case "平板电脑":
		features = append(features, "便携办公")
	}

	if len(features) == 0 {
		return "暂无特点描述"
	}
	return strings.Join(features, "、")
}

var shopGuides = map[string]string{
	"手机": `手机选购指南

主要考虑因素：
1. 性能配置：处理器、内存、存储空间
2. 拍照功能：摄像头参数、防抖、夜拍
3. 电池续航：电池容量、快充技术
4. 屏幕品质：分辨率、刷新率、显示技术
5. 手机尺寸：重量、握持感、便携性

选购建议：
• 明确预算和使用需求
• 对比不同品牌型号
• 查看用户真实评价
• 关注售后服务政策`,
	"笔记本电脑": `笔记本电脑选购指南

主要考虑因素：
1. 处理器性能：CPU型号、核心数
2. 显卡配置：独立显卡/集成显卡
3. 内存容量：建议8GB起步
4. 存储方案：SSD+HDD组合
5. 屏幕素质：分辨率、色域、亮度

选购建议：
• 根据使用场景选择
• 注意散热设计
• 考虑接口扩展性
• 选择合适的重量
• 关注续航能力
• 确认保修政策`,
	"耳机": `耳机选购指南

主要考虑因素：
1. 佩戴方式：入耳式/头戴式
2. 连接方式：有线/无线
3. 音质表现：频响范围、降噪
4. 续航时间：电池容量、充电速度
5. 防水防汗：运动使用需求

选购建议：
• 确定使用场景
• 试听音质效果
• 检查佩戴舒适度
• 了解售后保障`,
	"平板电脑": `平板电脑选购指南

主要考虑因素：
1. 屏幕大小：便携性与显示效果
2. 系统生态：应用商店资源
3. 处理性能：办公/娱乐需求
4. 配件支持：手写笔/键盘
5. 续航能力：电池容量

选购建议：
• 明确使用目的
• 考虑扩展性能
• 对比不同品牌
• 关注系统更新
• 评估配件成本`,
}

func shoppingGuide(category string) string {
	if guide, ok := shopGuides[category]; ok {
		return guide
	}
	return "抱歉，暂时没有该类商品的购物指南。我们目前提供手机、笔记本电脑、耳机和平板电脑的选购建议。"
}
