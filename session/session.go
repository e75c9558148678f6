// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/narrate"
	"github.com/tanxh33/visualise-dijkstra/playback"
	"github.com/tanxh33/visualise-dijkstra/prediction"
)

// Session is one learner's workspace. All methods are safe for concurrent
// use; playback listeners may call back into the Session.
type Session struct {
	mu sync.Mutex

	graph   *core.Graph
	labels  map[string]string // id → label
	byLabel map[string]string // label → id
	nextID  int
	example string // last preset loaded, "" after Clear

	ctl          *playback.Controller
	playbackOpts []playback.Option

	// run or prediction in progress
	start, finish string
	trace         *dijkstra.Trace
	narr          *narrate.Narrator
	pred          *prediction.Evaluator
	predicting    bool
	comparison    *prediction.Comparison

	log          *slog.Logger
	runRec       dijkstra.Recorder
	predRec      PredictionRecorder
	maxSnapshots int
	rng          *rand.Rand
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{
		labels:       make(map[string]string),
		byLabel:      make(map[string]string),
		log:          slog.New(slog.DiscardHandler),
		predRec:      nopPredictionRecorder{},
		maxSnapshots: dijkstra.DefaultMaxSnapshots,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.graph = core.NewGraph(core.WithLogger(s.log))
	s.ctl = playback.New(append([]playback.Option{playback.WithLogger(s.log)}, s.playbackOpts...)...)

	return s
}

// Controller returns the playback controller driving the current run.
func (s *Session) Controller() *playback.Controller {
	return s.ctl
}
