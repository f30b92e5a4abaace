// Package model defines the uniform interface to a backing text-generation
// model plus the retry policy shared by its implementations.
//
// A Model call produces a lazy, single-pass stream of response fragments,
// never a single blocking string. The stream is also the error channel: a
// transport failure is rendered as a final human-readable fragment so every
// call observably "produces something". Non-streaming calls may be retried
// with bounded exponential backoff; a stream is never retried once it has
// begun, because partial output would be unrecoverable.
package model
