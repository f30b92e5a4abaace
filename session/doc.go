// Package session stores per-session conversation history. The Store
// interface is what the dispatcher depends on; the in-memory implementation
// suits tests and single-process deployments. Additional backends can be
// added without changing any calling code.
package session
