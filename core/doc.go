// Package core defines the shared value types of the dispatch pipeline:
// conversation turns, the fragment stream contract every agent and model
// adapter produces, per-call results and the session-facing option map.
//
// The central contract is Stream: a lazily produced, single-pass sequence of
// text fragments delivered over a channel. Producers always close the
// channel and never deliver errors out of band; a failure is rendered as a
// final human-readable fragment. Consumers control pacing by how fast they
// pull and cancel by abandoning the channel together with their context.
package core
