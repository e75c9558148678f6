// SPDX-License-Identifier: MIT

// Package dijkstra defines the configuration options, sentinel errors and
// metrics hook for the instrumented shortest-path engine.
//
// Options:
//
//	– Logger:       structured logger for run lifecycle records (default: discard).
//	– Recorder:     metrics hook notified once per Run (default: no-op).
//	– MaxSnapshots: upper bound on recorded snapshots (default: DefaultMaxSnapshots, 0 = unlimited).
//
// Example usage:
//
//	trace, err := dijkstra.Run(g, "A", "C", dijkstra.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(trace.Result().Path, trace.Result().TotalCost)
package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultMaxSnapshots bounds a single run. Positive weights on any graph a
// learner can draw stay far below it.
const DefaultMaxSnapshots = 1 << 20

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates that the graph has no nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrEmptyNodeID indicates that start or finish is the empty string.
	ErrEmptyNodeID = errors.New("dijkstra: node ID is empty")

	// ErrNodeNotFound is the common cause of ErrStartNotFound and ErrFinishNotFound.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrStartNotFound indicates that the start node does not exist.
	ErrStartNotFound = fmt.Errorf("%w: start", ErrNodeNotFound)

	// ErrFinishNotFound indicates that the finish node does not exist.
	ErrFinishNotFound = fmt.Errorf("%w: finish", ErrNodeNotFound)

	// ErrSnapshotLimit indicates that the run recorded more than MaxSnapshots steps.
	ErrSnapshotLimit = errors.New("dijkstra: snapshot limit exceeded")

	// ErrPredecessorCycle indicates that walking predecessors from finish
	// never reached start.
	ErrPredecessorCycle = errors.New("dijkstra: predecessor chain does not reach start")

	// ErrBadMaxSnapshots indicates that WithMaxSnapshots received a negative value.
	ErrBadMaxSnapshots = errors.New("dijkstra: MaxSnapshots must be non-negative")
)

// IsValidationError reports whether err rejects the inputs of Run, as
// opposed to a failure during the run.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNilGraph) ||
		errors.Is(err, ErrEmptyGraph) ||
		errors.Is(err, ErrEmptyNodeID) ||
		errors.Is(err, ErrNodeNotFound)
}

// Outcome classifies a finished run.
type Outcome int

const (
	// OutcomeFound means the run ended with Completed.
	OutcomeFound Outcome = iota
	// OutcomeNoPath means the run ended with NoPathFound.
	OutcomeNoPath
)

// String returns a label suitable for metrics and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Recorder receives one notification per Run call. Implementations must be
// safe for concurrent use. metrics.Collector is the production implementation.
type Recorder interface {
	// RunFinished is called after a run produced a complete Trace.
	RunFinished(outcome Outcome, snapshots int, elapsed time.Duration)
	// RunFailed is called when Run returns an error.
	RunFailed(err error)
}

// nopRecorder discards every notification.
type nopRecorder struct{}

func (nopRecorder) RunFinished(Outcome, int, time.Duration) {}
func (nopRecorder) RunFailed(error)                         {}

// Options configures a Run.
type Options struct {
	Logger       *slog.Logger // run lifecycle records
	Recorder     Recorder     // metrics hook
	MaxSnapshots int          // 0 disables the limit
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics hook. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithMaxSnapshots bounds the number of recorded snapshots; 0 means no bound.
// Panics on a negative value.
func WithMaxSnapshots(n int) Option {
	if n < 0 {
		panic(ErrBadMaxSnapshots.Error())
	}
	return func(o *Options) {
		o.MaxSnapshots = n
	}
}

// DefaultOptions returns the Options used when no Option is passed.
//
// Defaults:
//   - Logger:       discard.
//   - Recorder:     no-op.
//   - MaxSnapshots: DefaultMaxSnapshots.
func DefaultOptions() Options {
	return Options{
		Logger:       slog.New(slog.DiscardHandler),
		Recorder:     nopRecorder{},
		MaxSnapshots: DefaultMaxSnapshots,
	}
}
