package core

import "time"

// Result is the outcome of one agent call. It is created fresh per call,
// never mutated after return and consumed exactly once by the dispatcher.
//
// Success stays true for normal outcomes including knowledge-table misses
// (those carry a templated "not found" response). Success is false only for
// invalid input or an unexpected internal fault, in which case Error is set
// and Response is nil.
type Result struct {
	Success        bool              `json:"success"`
	Response       Stream            `json:"-"`
	Error          string            `json:"error,omitempty"`
	ProcessingTime time.Duration     `json:"processing_time"`
	Meta           map[string]string `json:"meta,omitempty"`
}

// TextResult wraps a materialized answer as a successful single-fragment result.
func TextResult(text string) Result {
	return Result{Success: true, Response: TextStream(text)}
}

// StreamResult wraps a lazily produced answer as a successful result.
func StreamResult(s Stream) Result {
	return Result{Success: true, Response: s}
}

// FailureResult builds the terminal error outcome of an agent call.
func FailureResult(errMsg string) Result {
	return Result{Success: false, Error: errMsg}
}

// WithMeta attaches a metadata key to the result, allocating the map lazily.
func (r Result) WithMeta(key, value string) Result {
	if r.Meta == nil {
		r.Meta = map[string]string{}
	}
	r.Meta[key] = value
	return r
}
