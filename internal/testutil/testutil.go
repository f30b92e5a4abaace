// Package testutil holds shared fakes for package tests and examples: a
// canned weather provider and a convenience constructor for a fully scripted
// assistant that never touches the network.
package testutil

import (
	"context"

	"github.com/gewei11/multichat/model"
	"github.com/gewei11/multichat/weather"
)

// FakeWeatherProvider serves a fixed report, or a fixed error when Err is
// set. It records the last requested location and day count.
type FakeWeatherProvider struct {
	Report       *weather.Report
	Err          error
	LastLocation string
	LastDays     int
}

// Fetch implements weather.Provider.
func (p *FakeWeatherProvider) Fetch(_ context.Context, location string, days int) (*weather.Report, error) {
	p.LastLocation = location
	p.LastDays = days
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Report, nil
}

// CannedReport builds a plausible one-day report for a location.
func CannedReport(location string) *weather.Report {
	return &weather.Report{
		Location:   location,
		Now:        &weather.Now{Temperature: "22", Text: "晴"},
		LastUpdate: "2025-01-01T08:00:00+08:00",
	}
}

// ScriptedPair returns a fast/heavy model pair with deterministic echo
// output, suitable for driving the full pipeline in tests.
func ScriptedPair() (*model.ScriptedModel, *model.ScriptedModel) {
	return model.NewScriptedModel("qwen2.5", "ollama"), model.NewScriptedModel("deepseek-r1", "ollama")
}
