// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"maps"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/narrate"
	"github.com/tanxh33/visualise-dijkstra/prediction"
)

// Run computes the shortest path from start to finish and starts playback.
// Any prediction in progress is discarded.
func (s *Session) Run(start, finish string) (*dijkstra.Trace, error) {
	return s.run(start, finish, false)
}

// RunPrediction runs between the endpoints given to BeginPrediction and
// compares the result with the predicted path.
func (s *Session) RunPrediction() (*dijkstra.Trace, error) {
	s.mu.Lock()
	if !s.predicting {
		s.mu.Unlock()
		return nil, ErrNotPredicting
	}
	start, finish := s.start, s.finish
	s.mu.Unlock()

	return s.run(start, finish, true)
}

func (s *Session) run(start, finish string, predicted bool) (*dijkstra.Trace, error) {
	s.mu.Lock()
	if err := s.checkEndpointsLocked(start, finish); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	tr, err := dijkstra.Run(s.graph, start, finish,
		dijkstra.WithLogger(s.log),
		dijkstra.WithRecorder(s.runRec),
		dijkstra.WithMaxSnapshots(s.maxSnapshots),
	)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("session: run %s→%s: %w", start, finish, err)
	}

	labels := maps.Clone(s.labels)
	nopts := []narrate.Option{narrate.WithLabels(func(id string) string { return labels[id] })}
	var cmp *prediction.Comparison
	if predicted && s.pred != nil {
		c, cerr := s.pred.Compare(tr.Result(), finish)
		if cerr != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("session: compare prediction: %w", cerr)
		}
		cmp = &c
		nopts = append(nopts, narrate.WithPrediction(c.Predicted, c.PredictedCost))
	}

	s.resetRunLocked()
	s.start, s.finish = start, finish
	s.trace = tr
	s.narr = narrate.New(start, finish, nopts...)
	s.comparison = cmp
	s.mu.Unlock()

	if cmp != nil {
		s.predRec.PredictionCompared(verdict(*cmp))
	}
	s.ctl.Start(tr)

	return tr, nil
}

func verdict(c prediction.Comparison) string {
	switch {
	case !c.ReachesFinish:
		return VerdictIncomplete
	case c.IsOptimal:
		return VerdictOptimal
	default:
		return VerdictSuboptimal
	}
}

// BeginPrediction stops playback and starts a predicted path at start.
// Graph edits fail with ErrPredicting until the prediction is run, stopped
// or replaced by a Clear, Import or LoadExample.
func (s *Session) BeginPrediction(start, finish string) error {
	s.ctl.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkEndpointsLocked(start, finish); err != nil {
		return err
	}
	s.resetRunLocked()
	labels := maps.Clone(s.labels)
	s.start, s.finish = start, finish
	s.pred = prediction.New(s.graph)
	if err := s.pred.Start(start); err != nil {
		s.pred = nil
		return err
	}
	s.predicting = true
	s.narr = narrate.New(start, finish, narrate.WithLabels(func(id string) string { return labels[id] }))
	s.log.Debug("prediction started", "start", start, "finish", finish)

	return nil
}

// SelectNode applies a click during prediction: the last node retracts, a
// neighbor of it extends. It reports whether the path changed.
func (s *Session) SelectNode(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.predicting {
		return false
	}
	return s.pred.Select(id)
}

// Candidates returns the nodes SelectNode would append.
func (s *Session) Candidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.predicting {
		return nil
	}
	return s.pred.Candidates()
}

// PredictedPath returns the predicted path and its cost.
func (s *Session) PredictedPath() ([]string, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.predicting {
		return nil, 0, ErrNotPredicting
	}
	cost, err := s.pred.CurrentCost()
	if err != nil {
		return nil, 0, err
	}
	return s.pred.Path(), cost, nil
}

// Predicting reports whether a prediction is being built.
func (s *Session) Predicting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predicting
}

// Comparison returns the verdict of the last predicted run.
func (s *Session) Comparison() (prediction.Comparison, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.comparison == nil {
		return prediction.Comparison{}, false
	}
	return *s.comparison, true
}

// Trace returns the current run, or nil.
func (s *Session) Trace() *dijkstra.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace
}

// Endpoints returns the start and finish of the run or prediction.
func (s *Session) Endpoints() (start, finish string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.finish, s.start != ""
}

// Stop ends playback or prediction and forgets the run.
func (s *Session) Stop() {
	s.ctl.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetRunLocked()
}

// Heading is the narration title, "" when nothing is running.
func (s *Session) Heading() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.narr == nil {
		return ""
	}
	return s.narr.Heading()
}

// Narration explains what is on screen: the prediction so far, the
// snapshot under the playback cursor, or the introduction.
func (s *Session) Narration() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.predicting {
		cost, err := s.pred.CurrentCost()
		if err != nil {
			return []string{s.narr.Heading(), "", "The selected path is no longer connected: " + err.Error()}
		}
		return s.narr.Prediction(s.pred.Path(), cost)
	}
	if s.narr != nil {
		if snap, ok := s.ctl.Current(); ok {
			return s.narr.Describe(snap)
		}
	}
	return narrate.Intro()
}

func (s *Session) checkEndpointsLocked(start, finish string) error {
	for _, id := range [2]string{start, finish} {
		if _, ok := s.labels[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	if start == finish {
		return ErrSameEndpoints
	}
	return nil
}

func (s *Session) resetRunLocked() {
	s.start, s.finish = "", ""
	s.trace = nil
	s.narr = nil
	s.pred = nil
	s.predicting = false
	s.comparison = nil
}
