// Package config loads the assistant configuration: defaults, then an
// optional YAML file, then environment variables. Environment wins so
// secrets never need to live in the file.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Logging  Logging  `yaml:"logging"`
	Models   Models   `yaml:"models"`
	Weather  Weather  `yaml:"weather"`
	Defaults Defaults `yaml:"defaults"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Logging controls the structured log output.
type Logging struct {
	Level  string `yaml:"level" envconfig:"MULTICHAT_LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"MULTICHAT_LOG_FORMAT"`
}

// Models configures the fast/heavy model pair.
type Models struct {
	OpenAI    OpenAI    `yaml:"openai"`
	Anthropic Anthropic `yaml:"anthropic"`
}

// OpenAI configures the fast model backend.
type OpenAI struct {
	APIKey  string `yaml:"api_key" envconfig:"OPENAI_API_KEY"`
	Model   string `yaml:"model" envconfig:"MULTICHAT_OPENAI_MODEL"`
	BaseURL string `yaml:"base_url" envconfig:"OPENAI_BASE_URL"`
}

// Anthropic configures the heavy model backend.
type Anthropic struct {
	APIKey string `yaml:"api_key" envconfig:"ANTHROPIC_API_KEY"`
	Model  string `yaml:"model" envconfig:"MULTICHAT_ANTHROPIC_MODEL"`
}

// Weather configures the weather provider.
type Weather struct {
	APIKey string `yaml:"api_key" envconfig:"SENIVERSE_API_KEY"`
}

// Defaults are the initial per-turn options of a new session.
type Defaults struct {
	ModelOption      string `yaml:"model_option" envconfig:"MULTICHAT_MODEL_OPTION"`
	SentimentEnabled *bool  `yaml:"sentiment_enabled"`
	ShowAnalysis     *bool  `yaml:"show_analysis"`
	WeatherEnabled   *bool  `yaml:"weather_enabled"`
}

// Metrics configures the optional Prometheus endpoint; empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr" envconfig:"MULTICHAT_METRICS_ADDR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info", Format: "json"},
		Defaults: Defaults{
			ModelOption: "auto",
		},
	}
}

// Load builds the effective configuration. path may be empty to skip the
// file layer; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}
