// Package logging provides the single concrete Logger the orchestrator and
// agent binaries wire into their packages, matching cmd/main.go's stdLogger but
// promoted out of main() since two binaries (orchestrator, agent) now need
// one; simclient logs through the standard log package directly.
package logging

import "log"

// Logger is the structured key-value logging contract every package in
// this module declares locally (internal/state.Logger,
// internal/agentmanager.Logger, internal/grpcapi.Logger, and so on) and
// that StdLogger satisfies by construction.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// StdLogger logs through the standard library's log package, one line per
// call, level-prefixed.
type StdLogger struct {
	component string
}

// New returns a StdLogger that prefixes every line with component, e.g.
// "orchestrator" or "agent".
func New(component string) *StdLogger {
	return &StdLogger{component: component}
}

func (l *StdLogger) Debug(msg string, keysAndValues ...any) {
	log.Printf("[DEBUG] %s: %s %v", l.component, msg, keysAndValues)
}

func (l *StdLogger) Info(msg string, keysAndValues ...any) {
	log.Printf("[INFO] %s: %s %v", l.component, msg, keysAndValues)
}

func (l *StdLogger) Warn(msg string, keysAndValues ...any) {
	log.Printf("[WARN] %s: %s %v", l.component, msg, keysAndValues)
}

func (l *StdLogger) Error(msg string, keysAndValues ...any) {
	log.Printf("[ERROR] %s: %s %v", l.component, msg, keysAndValues)
}
