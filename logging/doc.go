// Package logging provides a tiny abstraction over slog so the rest of the
// codebase depends on a minimal interface (Logger) while callers can plug
// any structured logger. ChatLogger adds contextual cloning helpers
// (component, session) plus convenience methods for model calls and routing
// decisions.
package logging
