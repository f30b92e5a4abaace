package weather

import (
	"regexp"
	"strconv"
	"strings"
)

// Query is the parsed intent of a weather question: which city and how many
// forecast days (1 = today, capped at 3).
type Query struct {
	City string `json:"city"`
	Days int    `json:"days"`
}

// MaxForecastDays bounds how far ahead a query may look.
const MaxForecastDays = 3

var (
	futureDaysRe = regexp.MustCompile(`未来\s*(\d+)\s*天`)
	timeWordsRe  = regexp.MustCompile(`(天气|查询|的|怎么样|如何|未来|今天|明天|后天|\d+天|一周)`)
	cityRe       = regexp.MustCompile(`\p{Han}{2,4}`)
)

// ParseQuery extracts city and day count from free text. City is empty when
// no candidate remains after stripping time-related words; Days defaults to
// 1 and never exceeds MaxForecastDays.
func ParseQuery(text string) Query {
	days := 1
	switch {
	case strings.Contains(text, "明天"):
		days = 2
	case strings.Contains(text, "后天"):
		days = 3
	case strings.Contains(text, "未来"), strings.Contains(text, "一周"), strings.Contains(text, "7天"):
		days = MaxForecastDays
		if m := futureDaysRe.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n < MaxForecastDays {
				days = n
			}
		}
	}

	clean := timeWordsRe.ReplaceAllString(text, "")
	city := cityRe.FindString(clean)
	return Query{City: city, Days: days}
}
