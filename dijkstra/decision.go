// SPDX-License-Identifier: MIT

package dijkstra

import (
	"slices"
	"strconv"
)

// DecisionKind tags the state a Snapshot was recorded in.
type DecisionKind int

const (
	KindInitialized DecisionKind = iota
	KindVisiting
	KindEvaluatingNeighbor
	KindImprovementFound
	KindImprovementApplied
	KindNoImprovement
	KindDestinationReached
	KindPathBacktrackStep
	KindCompleted
	KindNoPathFound
)

var kindNames = [...]string{
	KindInitialized:        "Initialized",
	KindVisiting:           "Visiting",
	KindEvaluatingNeighbor: "EvaluatingNeighbor",
	KindImprovementFound:   "ImprovementFound",
	KindImprovementApplied: "ImprovementApplied",
	KindNoImprovement:      "NoImprovement",
	KindDestinationReached: "DestinationReached",
	KindPathBacktrackStep:  "PathBacktrackStep",
	KindCompleted:          "Completed",
	KindNoPathFound:        "NoPathFound",
}

// String returns the variant name.
func (k DecisionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "DecisionKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Terminal reports whether k ends a run.
func (k DecisionKind) Terminal() bool {
	return k == KindCompleted || k == KindNoPathFound
}

// Decision describes what the engine was doing when a Snapshot was taken.
// The set of implementations is closed; switch on the concrete type.
type Decision interface {
	Kind() DecisionKind
	decision()
}

// Initialized: cost table and frontier seeded.
type Initialized struct{}

// Visiting: Node is the frontier minimum about to be dequeued.
type Visiting struct {
	Node string
}

// EvaluatingNeighbor: the engine computed the cost of reaching Neighbor
// through Node. Known is Neighbor's cost before the comparison.
type EvaluatingNeighbor struct {
	Node           string
	Neighbor       string
	Weight         int64
	CostToNeighbor int64
	Known          Cost
}

// ImprovementFound: CostToNeighbor beats Previous; tables are not updated yet.
type ImprovementFound struct {
	Node           string
	Neighbor       string
	CostToNeighbor int64
	Previous       Cost
}

// ImprovementApplied: Neighbor now costs CostToNeighbor via Node and has
// been re-queued at that priority.
type ImprovementApplied struct {
	Node           string
	Neighbor       string
	CostToNeighbor int64
}

// NoImprovement: CostToNeighbor did not beat Known; nothing changed.
type NoImprovement struct {
	Node           string
	Neighbor       string
	CostToNeighbor int64
	Known          Cost
}

// DestinationReached: the finish node was dequeued.
type DestinationReached struct {
	Node string
}

// PathBacktrackStep: Node was appended while walking predecessors back from
// the finish. Partial is the path so far, finish first.
type PathBacktrackStep struct {
	Node    string
	Partial []string
}

// Completed: the shortest path, start first, and its total cost.
type Completed struct {
	Path      []string
	TotalCost Cost
}

// NoPathFound: the frontier emptied without reaching the finish.
type NoPathFound struct{}

func (Initialized) Kind() DecisionKind        { return KindInitialized }
func (Visiting) Kind() DecisionKind           { return KindVisiting }
func (EvaluatingNeighbor) Kind() DecisionKind { return KindEvaluatingNeighbor }
func (ImprovementFound) Kind() DecisionKind   { return KindImprovementFound }
func (ImprovementApplied) Kind() DecisionKind { return KindImprovementApplied }
func (NoImprovement) Kind() DecisionKind      { return KindNoImprovement }
func (DestinationReached) Kind() DecisionKind { return KindDestinationReached }
func (PathBacktrackStep) Kind() DecisionKind  { return KindPathBacktrackStep }
func (Completed) Kind() DecisionKind          { return KindCompleted }
func (NoPathFound) Kind() DecisionKind        { return KindNoPathFound }

func (Initialized) decision()        {}
func (Visiting) decision()           {}
func (EvaluatingNeighbor) decision() {}
func (ImprovementFound) decision()   {}
func (ImprovementApplied) decision() {}
func (NoImprovement) decision()      {}
func (DestinationReached) decision() {}
func (PathBacktrackStep) decision()  {}
func (Completed) decision()          {}
func (NoPathFound) decision()        {}

// cloneDecision copies the slice-bearing variants so callers cannot reach
// a snapshot's storage.
func cloneDecision(d Decision) Decision {
	switch v := d.(type) {
	case PathBacktrackStep:
		v.Partial = slices.Clone(v.Partial)
		return v
	case Completed:
		v.Path = slices.Clone(v.Path)
		return v
	default:
		return d
	}
}
