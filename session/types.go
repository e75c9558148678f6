// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/playback"
)

// Sentinel errors.
var (
	ErrEmptyLabel     = errors.New("session: label is empty")
	ErrDuplicateLabel = errors.New("session: label already used")
	ErrUnknownNode    = errors.New("session: no such node")
	ErrUnknownEdge    = errors.New("session: no such edge")
	ErrSelfLoop       = errors.New("session: edge joins a node to itself")
	ErrBadWeight      = errors.New("session: edge weight must be positive")
	ErrDuplicateEdge  = errors.New("session: edge already exists")
	ErrSameEndpoints  = errors.New("session: start and finish must differ")
	ErrNotPredicting  = errors.New("session: no prediction in progress")
	ErrPredicting     = errors.New("session: graph is locked while a prediction is built")
	ErrNilGraph       = errors.New("session: graph is nil")
)

// PredictionRecorder counts prediction verdicts. metrics.Collector
// implements it.
type PredictionRecorder interface {
	PredictionCompared(verdict string)
}

type nopPredictionRecorder struct{}

func (nopPredictionRecorder) PredictionCompared(string) {}

// Prediction verdicts passed to PredictionRecorder.
const (
	VerdictOptimal    = "optimal"
	VerdictSuboptimal = "suboptimal"
	VerdictIncomplete = "incomplete"
)

// Node is a graph node as the learner sees it.
type Node struct {
	ID    string
	Label string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for edits and runs. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder is passed to every dijkstra.Run.
func WithRecorder(r dijkstra.Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.runRec = r
		}
	}
}

// WithPredictionRecorder receives one verdict per predicted run.
func WithPredictionRecorder(r PredictionRecorder) Option {
	return func(s *Session) {
		if r != nil {
			s.predRec = r
		}
	}
}

// WithMaxSnapshots bounds each run; see dijkstra.WithMaxSnapshots.
func WithMaxSnapshots(n int) Option {
	if n < 0 {
		panic("session: WithMaxSnapshots(n < 0)")
	}
	return func(s *Session) {
		s.maxSnapshots = n
	}
}

// WithPlayback configures the session's playback.Controller.
func WithPlayback(opts ...playback.Option) Option {
	return func(s *Session) {
		s.playbackOpts = append(s.playbackOpts, opts...)
	}
}

// WithRand sets the source used by LoadRandomExample. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(s *Session) {
		s.rng = r
	}
}
