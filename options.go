package tlacheck

import (
	"io"
	"time"
)

// EngineOption configures an Engine built with New.
type EngineOption interface {
	engineOpt()
}

type outputOption struct{ w io.Writer }

func (outputOption) engineOpt() {}

// WithOutput directs the engine's stdout surface — trace lines and
// stats lines — to w instead of the default, os.Stdout.
func WithOutput(w io.Writer) EngineOption {
	return outputOption{w}
}

type reportIntervalOption struct{ d time.Duration }

func (reportIntervalOption) engineOpt() {}

// WithReportInterval starts a concurrent observer goroutine that prints
// a stats snapshot every d while Run explores the state space. A zero
// or negative d, the default, disables the observer.
func WithReportInterval(d time.Duration) EngineOption {
	return reportIntervalOption{d}
}
