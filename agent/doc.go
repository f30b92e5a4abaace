// Package agent contains the domain agents behind the dispatcher: free
// conversation, weather, education, e-commerce and government services.
//
// Agents share one contract: Process never panics past the boundary and
// always returns a Result. Knowledge-table misses stay successful and carry
// a templated "not found" answer; Success is false only for invalid input
// or an internal fault. Model calls are delegated to a selector so every
// agent honors the same model-option strategies.
package agent
