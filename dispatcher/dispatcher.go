// Package dispatcher wires the router, the domain agents and the session
// store into the single entry point of the module. One call processes one
// user turn: route, delegate, stream the answer back character by character
// and record both sides of the exchange in session history.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/gewei11/multichat/agent"
	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/logging"
	"github.com/gewei11/multichat/metrics"
	"github.com/gewei11/multichat/router"
	"github.com/gewei11/multichat/session"
)

// Options configure a Dispatcher.
type Options struct {
	Logger  logging.Logger
	Metrics *metrics.Metrics
}

// Dispatcher routes each turn to exactly one domain agent. The agent table
// is fixed at construction; the conversation agent doubles as the fallback
// when a routed domain has no agent registered.
type Dispatcher struct {
	router  *router.Router
	agents  map[string]agent.Agent
	store   session.Store
	logger  logging.Logger
	metrics *metrics.Metrics
}

// New builds a dispatcher over a router, a session store and the agent set.
func New(r *router.Router, store session.Store, agents []agent.Agent, optFns ...func(o *Options)) *Dispatcher {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	table := make(map[string]agent.Agent, len(agents))
	for _, a := range agents {
		table[a.Domain()] = a
	}
	return &Dispatcher{
		router:  r,
		agents:  table,
		store:   store,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// ProcessInput handles one user turn and streams the answer back one
// character at a time. The user turn is recorded before any processing
// starts; the assistant turn is recorded only after the stream was fully
// delivered, so a cancelled stream leaves no half answer in history.
//
// The returned channel is always closed. Errors are delivered in-band as
// the final text of the stream, never out-of-band. The consumer must drain
// the channel or cancel ctx.
func (d *Dispatcher) ProcessInput(ctx context.Context, sessionID, input string, opts core.Options) <-chan string {
	out := make(chan string)

	history, err := d.store.History(sessionID)
	if err != nil {
		d.logger.Error("history load failed", "session_id", sessionID, "error", err)
		history = nil
	}
	if appendErr := d.store.Append(sessionID, core.NewTurn(core.RoleUser, input)); appendErr != nil {
		d.logger.Error("user turn not recorded", "session_id", sessionID, "error", appendErr)
	}

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("dispatch fault", "session_id", sessionID, "panic", fmt.Sprint(r))
				d.emit(ctx, out, fmt.Sprintf("抱歉，处理您的输入时遇到了问题: %v", r))
			}
		}()

		start := time.Now()
		domain := d.router.Route(input, opts)
		d.logger.Info("input routed", "session_id", sessionID, "domain", domain)

		a, ok := d.agents[domain]
		if !ok {
			a, ok = d.agents[core.DomainConversation]
			if !ok {
				d.emit(ctx, out, "抱歉，当前没有可以处理该请求的服务。")
				return
			}
			d.logger.Warn("no agent for domain, using fallback", "domain", domain)
		}

		result := a.Process(ctx, input, agent.Request{Options: opts, History: history})
		d.metrics.ObserveTurn(domain, time.Since(start), result.Success)

		if !result.Success {
			d.logger.Error("agent returned failure", "session_id", sessionID, "domain", domain, "error", result.Error)
			text := fmt.Sprintf("抱歉，处理您的输入时遇到了问题: %s", result.Error)
			if d.emit(ctx, out, text) {
				d.recordAssistant(sessionID, text)
			}
			return
		}

		var full []rune
		for frag := range result.Response {
			for _, r := range frag {
				select {
				case <-ctx.Done():
					// Drain the producer so it can close, then drop the turn.
					for range result.Response {
					}
					return
				case out <- string(r):
					full = append(full, r)
				}
			}
		}
		d.recordAssistant(sessionID, string(full))
	}()

	return out
}

// ProcessInputSync collects the whole answer of one turn. Intended for
// tests and non-interactive callers.
func (d *Dispatcher) ProcessInputSync(ctx context.Context, sessionID, input string, opts core.Options) string {
	return core.Collect(ctx, d.ProcessInput(ctx, sessionID, input, opts))
}

// History returns the recorded turns of a session.
func (d *Dispatcher) History(sessionID string) ([]core.Turn, error) {
	return d.store.History(sessionID)
}

// ClearSession drops the history of a session.
func (d *Dispatcher) ClearSession(sessionID string) error {
	return d.store.Clear(sessionID)
}

// emit sends one text block character by character. It reports whether the
// whole text was delivered.
func (d *Dispatcher) emit(ctx context.Context, out chan<- string, text string) bool {
	for _, r := range text {
		select {
		case <-ctx.Done():
			return false
		case out <- string(r):
		}
	}
	return true
}

func (d *Dispatcher) recordAssistant(sessionID, text string) {
	if err := d.store.Append(sessionID, core.NewTurn(core.RoleAssistant, text)); err != nil {
		d.logger.Error("assistant turn not recorded", "session_id", sessionID, "error", err)
	}
}
