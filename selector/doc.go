// Package selector implements the per-agent model-selection strategy table.
// A stable config-facing string, chosen by UI toggles, maps to a strategy
// that drives one or two models and yields a single merged fragment stream.
// Every strategy returns the same stream shape regardless of internal
// fan-out, so callers never special-case which strategy ran. An unknown key
// falls back to the automatic strategy rather than failing.
package selector
