package selector

import (
	"context"

	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/model"
)

// Config-facing selection keys. Explicit model names are registered
// alongside these from Model.Info().Name.
const (
	KeyAuto   = "auto"
	KeyHybrid = "hybrid"
)

// Selector maps selection keys to strategies. The table is built at
// construction and immutable afterwards; lookups with an unknown key fall
// back to the automatic strategy.
type Selector struct {
	table    map[string]Strategy
	fallback Strategy
	logger   logging.Logger
}

// Options configure the automatic strategy of a selector.
type Options struct {
	// AutoKeywords route a prompt to the heavy model when present.
	AutoKeywords []string
	// AutoHeavyLen routes prompts longer than this many runes to the heavy
	// model; 0 disables the length rule.
	AutoHeavyLen int
	Logger       logging.Logger
}

// New builds the standard strategy table for a fast/heavy model pair:
// "auto", "hybrid" and one explicit entry per model name.
func New(fast, heavy model.Model, optFns ...func(o *Options)) *Selector {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	auto := Auto{Fast: fast, Heavy: heavy, Keywords: opts.AutoKeywords, HeavyLen: opts.AutoHeavyLen}
	s := &Selector{
		table:    map[string]Strategy{},
		fallback: auto,
		logger:   opts.Logger,
	}
	s.register(auto)
	s.register(Fixed{Model: fast})
	s.register(Fixed{Model: heavy})
	s.register(Hybrid{Fast: fast, Heavy: heavy})
	return s
}

func (s *Selector) register(st Strategy) { s.table[st.Name()] = st }

// Strategy resolves a selection key, falling back to the automatic strategy
// for unknown keys. It never fails: the key comes from UI toggles and must
// not be able to break a turn.
func (s *Selector) Strategy(key string) Strategy {
	if st, ok := s.table[key]; ok {
		return st
	}
	s.logger.Warn("unknown model option, falling back", "model_option", key, "fallback", s.fallback.Name())
	return s.fallback
}

// Generate resolves key and drives the chosen strategy.
func (s *Selector) Generate(ctx context.Context, key string, req model.Request) <-chan model.Response {
	return s.Strategy(key).Generate(ctx, req)
}
