package weather

import (
	"fmt"
	"strings"
)

// FormatReport renders a report as the user-facing text block. Output is
// deterministic for a given report and day count.
func FormatReport(r *Report, days int) string {
	var lines []string
	lines = append(lines, "📍 "+r.Location)

	if r.Now != nil {
		lines = append(lines,
			"\n🕐 当前天气：",
			fmt.Sprintf("🌡️ 温度：%s°C", r.Now.Temperature),
			fmt.Sprintf("🌤️ 天气：%s", r.Now.Text),
		)
	}

	if len(r.Daily) > 0 && days > 1 {
		lines = append(lines, "\n📅 天气预报：")
		limit := days
		if limit > len(r.Daily) {
			limit = len(r.Daily)
		}
		for _, day := range r.Daily[:limit] {
			lines = append(lines,
				fmt.Sprintf("\n%s：", day.Date),
				fmt.Sprintf("🌡️ 温度：%s°C ~ %s°C", day.Low, day.High),
				fmt.Sprintf("🌅 白天：%s", day.TextDay),
				fmt.Sprintf("🌙 夜间：%s", day.TextNight),
				fmt.Sprintf("🌬️ 风向：%s 风力：%s级", day.WindDirection, day.WindScale),
				fmt.Sprintf("💧 相对湿度：%s%%", day.Humidity),
			)
		}
	}

	lines = append(lines, fmt.Sprintf("\n🔄 更新时间：%s", r.LastUpdate))
	return strings.Join(lines, "\n")
}
