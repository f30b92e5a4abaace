package agent

import (
	"context"
	"fmt"

	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/weather"
)

// Weather answers weather queries through an external provider. Provider
// failures stay in-band: the user gets an apology text and the turn stays
// successful, matching how every other agent reports collaborator trouble.
type Weather struct {
	base
	provider   weather.Provider
	translator *weather.CityTranslator
}

// NewWeather builds the weather agent.
func NewWeather(provider weather.Provider, optFns ...func(o *WeatherOptions)) *Weather {
	opts := WeatherOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Weather{
		base:       newBase(core.DomainWeather, opts.Logger),
		provider:   provider,
		translator: weather.NewCityTranslator(),
	}
}

// WeatherOptions configure construction of a Weather agent.
type WeatherOptions struct {
	Logger logging.Logger
}

// Process implements Agent.
func (a *Weather) Process(ctx context.Context, input string, req Request) core.Result {
	return a.guard(input, func() core.Result {
		q := weather.ParseQuery(input)
		if q.City == "" {
			return core.TextResult("请告诉我您想查询哪个城市的天气？例如：北京天气怎么样")
		}

		location := a.translator.Translate(q.City)
		a.logger.Debug("weather lookup", "city", q.City, "location", location, "days", q.Days)

		report, err := a.provider.Fetch(ctx, location, q.Days)
		if err != nil {
			a.logger.Warn("weather provider failed", "city", q.City, "error", err)
			return core.TextResult(fmt.Sprintf("抱歉，查询%s的天气时遇到问题，请稍后再试。", q.City)).
				WithMeta("city", q.City)
		}

		return core.TextResult(weather.FormatReport(report, q.Days)).WithMeta("city", q.City)
	})
}
