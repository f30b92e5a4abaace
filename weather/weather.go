// Package weather holds the weather-collaborator contracts: query parsing,
// a provider interface with an HTTP implementation against a seniverse-style
// JSON API, pinyin city-name translation and deterministic report
// formatting. The dispatch core only depends on the Provider contract; the
// HTTP details stay behind it.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gewei11/multichat/logging"
)

// Now is the current-conditions block of a report.
type Now struct {
	Temperature string `json:"temperature"`
	Text        string `json:"text"`
}

// Day is one forecast entry.
type Day struct {
	Date          string `json:"date"`
	Low           string `json:"low"`
	High          string `json:"high"`
	TextDay       string `json:"text_day"`
	TextNight     string `json:"text_night"`
	WindDirection string `json:"wind_direction"`
	WindScale     string `json:"wind_scale"`
	Humidity      string `json:"humidity"`
}

// Report is the structured payload a provider returns for one location.
type Report struct {
	Location   string `json:"location"`
	Now        *Now   `json:"now,omitempty"`
	Daily      []Day  `json:"daily,omitempty"`
	LastUpdate string `json:"last_update"`
}

// Provider is the collaborator contract for fetching weather data. The
// location argument is already transliterated.
type Provider interface {
	Fetch(ctx context.Context, location string, days int) (*Report, error)
}

// ClientOptions configure the HTTP provider.
type ClientOptions struct {
	APIKey     string
	NowURL     string
	DailyURL   string
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client fetches weather data over HTTP. Timeouts are the transport's
// responsibility: the embedded http.Client carries one.
type Client struct {
	opts ClientOptions
}

// NewClient constructs the HTTP provider with seniverse defaults.
func NewClient(optFns ...func(o *ClientOptions)) *Client {
	opts := ClientOptions{
		NowURL:     "https://api.seniverse.com/v3/weather/now.json",
		DailyURL:   "https://api.seniverse.com/v3/weather/daily.json",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{opts: opts}
}

// apiResponse mirrors the provider's JSON envelope.
type apiResponse struct {
	Results []struct {
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
		Now        *Now   `json:"now"`
		Daily      []Day  `json:"daily"`
		LastUpdate string `json:"last_update"`
	} `json:"results"`
}

// Fetch implements Provider. Multi-day queries combine the forecast with
// current conditions; a missing current block degrades to forecast-only.
func (c *Client) Fetch(ctx context.Context, location string, days int) (*Report, error) {
	if days > 1 {
		report, err := c.fetchOne(ctx, c.opts.DailyURL, location, days)
		if err != nil {
			return nil, err
		}
		if now, err := c.fetchOne(ctx, c.opts.NowURL, location, 1); err == nil {
			report.Now = now.Now
		} else {
			c.opts.Logger.Warn("current conditions unavailable", "location", location, "error", err)
		}
		return report, nil
	}
	return c.fetchOne(ctx, c.opts.NowURL, location, 1)
}

func (c *Client) fetchOne(ctx context.Context, endpoint, location string, days int) (*Report, error) {
	params := url.Values{
		"key":      {c.opts.APIKey},
		"location": {location},
		"language": {"zh-Hans"},
		"unit":     {"c"},
	}
	if days > 1 {
		params.Set("days", fmt.Sprint(days))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}
	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("weather api returned no results for %q", location)
	}
	r := decoded.Results[0]
	return &Report{
		Location:   r.Location.Name,
		Now:        r.Now,
		Daily:      r.Daily,
		LastUpdate: r.LastUpdate,
	}, nil
}
