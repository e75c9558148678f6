// SPDX-License-Identifier: MIT

package prediction

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

// Sentinel errors.
var (
	ErrNotStarted  = errors.New("prediction: path not started")
	ErrNotAdjacent = errors.New("prediction: nodes are not adjacent")
	ErrEmptyNodeID = errors.New("prediction: node ID is empty")
)

// WeightLookup reads undirected edge weights. *core.Graph implements it.
type WeightLookup interface {
	Weight(a, b string) (int64, bool)
	Neighbors(id string) []string
}

// Evaluator is a path that always starts at the node given to Start.
// It is not safe for concurrent use.
type Evaluator struct {
	lookup WeightLookup
	path   []string
}

// New returns an Evaluator reading weights from lookup.
func New(lookup WeightLookup) *Evaluator {
	return &Evaluator{lookup: lookup}
}

// Start resets the path to [start].
func (e *Evaluator) Start(start string) error {
	if start == "" {
		return ErrEmptyNodeID
	}
	e.path = append(e.path[:0], start)
	return nil
}

// Extend appends node if it is adjacent to the last node.
func (e *Evaluator) Extend(node string) error {
	if len(e.path) == 0 {
		return ErrNotStarted
	}
	if node == "" {
		return ErrEmptyNodeID
	}
	last := e.path[len(e.path)-1]
	if _, ok := e.lookup.Weight(last, node); !ok {
		return fmt.Errorf("%w: %q and %q", ErrNotAdjacent, last, node)
	}
	e.path = append(e.path, node)
	return nil
}

// Retract removes the last node. The start node is never removed; Retract
// reports whether anything was removed.
func (e *Evaluator) Retract() bool {
	if len(e.path) <= 1 {
		return false
	}
	e.path = e.path[:len(e.path)-1]
	return true
}

// CurrentCost sums the weights along the path; a single node costs 0.
// Weights are read on every call, so edits to the graph show up at once.
func (e *Evaluator) CurrentCost() (int64, error) {
	if len(e.path) == 0 {
		return 0, ErrNotStarted
	}
	var sum int64
	for i := 1; i < len(e.path); i++ {
		w, ok := e.lookup.Weight(e.path[i-1], e.path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q and %q", ErrNotAdjacent, e.path[i-1], e.path[i])
		}
		sum += w
	}
	return sum, nil
}

// Path returns a copy of the chosen path.
func (e *Evaluator) Path() []string { return slices.Clone(e.path) }

// Last returns the last node, or false before Start.
func (e *Evaluator) Last() (string, bool) {
	if len(e.path) == 0 {
		return "", false
	}
	return e.path[len(e.path)-1], true
}

// Len returns the number of nodes on the path.
func (e *Evaluator) Len() int { return len(e.path) }

// Started reports whether Start has been called since the last Reset.
func (e *Evaluator) Started() bool { return len(e.path) > 0 }

// Reset forgets the path.
func (e *Evaluator) Reset() { e.path = nil }

// Candidates returns the nodes Extend would accept, sorted.
func (e *Evaluator) Candidates() []string {
	last, ok := e.Last()
	if !ok {
		return nil
	}
	return e.lookup.Neighbors(last)
}

// Select applies a click on node: the last node (other than the start)
// retracts, a neighbor of the last node extends, anything else is ignored.
// It reports whether the path changed.
func (e *Evaluator) Select(node string) bool {
	last, ok := e.Last()
	if !ok {
		return false
	}
	if node == last {
		return e.Retract()
	}
	return e.Extend(node) == nil
}

// Comparison sets a prediction against the computed optimum.
type Comparison struct {
	Predicted     []string
	PredictedCost int64
	Optimal       []string
	OptimalCost   dijkstra.Cost
	// ReachesFinish is true when the prediction ends on the run's finish.
	ReachesFinish bool
	// IsOptimal is true when the prediction reaches the finish at the
	// optimal cost (it may differ from the engine's path on ties).
	IsOptimal bool
	// Excess is PredictedCost minus the optimal cost when both are known.
	Excess int64
}

// Compare evaluates the current path against res for a run ending at finish.
func (e *Evaluator) Compare(res dijkstra.Result, finish string) (Comparison, error) {
	cost, err := e.CurrentCost()
	if err != nil {
		return Comparison{}, err
	}
	cmp := Comparison{
		Predicted:     e.Path(),
		PredictedCost: cost,
		Optimal:       slices.Clone(res.Path),
		OptimalCost:   res.TotalCost,
	}
	last, _ := e.Last()
	cmp.ReachesFinish = last == finish
	if best, ok := res.TotalCost.Value(); ok && cmp.ReachesFinish {
		cmp.Excess = cost - best
		cmp.IsOptimal = cmp.Excess == 0
	}
	return cmp, nil
}
