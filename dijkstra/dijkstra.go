// SPDX-License-Identifier: MIT

// Package dijkstra implements the instrumented Dijkstra run.
//
// Notes on implementation choices:
//
//   - Run searches a private Clone of the graph so the host may keep editing.
//   - Neighbors are evaluated in sorted order and the frontier breaks ties by
//     insertion order, so the same inputs always yield the same snapshots.
//   - Every state change is followed by emit, which deep-copies the tables.
//   - There is no visited set: stale frontier entries are dequeued and
//     re-evaluated, producing NoImprovement steps.
package dijkstra

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/frontier"
)

// Run computes the shortest path from start to finish in g and records
// every decision as a Snapshot.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and finish must be non-empty (ErrEmptyNodeID).
//  3. g must have at least one node (ErrEmptyGraph).
//  4. g must contain start (ErrStartNotFound).
//  5. g must contain finish (ErrFinishNotFound).
//
// No snapshot is produced when validation fails. An unreachable finish is
// not an error: the returned Trace ends with NoPathFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V) search + O(V) per snapshot.
//   - Space: O(V) per snapshot.
func Run(g *core.Graph, start, finish string, opts ...Option) (*Trace, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs against a private copy of the graph.
	if g == nil {
		return nil, reject(cfg, ErrNilGraph)
	}
	if start == "" || finish == "" {
		return nil, reject(cfg, ErrEmptyNodeID)
	}
	snap := g.Clone()
	if snap.NodeCount() == 0 {
		return nil, reject(cfg, ErrEmptyGraph)
	}
	if !snap.HasNode(start) {
		return nil, reject(cfg, fmt.Errorf("%w: %q", ErrStartNotFound, start))
	}
	if !snap.HasNode(finish) {
		return nil, reject(cfg, fmt.Errorf("%w: %q", ErrFinishNotFound, finish))
	}

	// 3) Prepare runner state.
	began := time.Now()
	nodes := snap.Nodes()
	r := &runner{
		g:      snap,
		start:  start,
		finish: finish,
		cfg:    cfg,
		costs:  make(map[string]Cost, len(nodes)),
		prev:   make(map[string]string, len(nodes)),
		front:  frontier.New(),
	}
	id := ulid.Make()
	log := cfg.Logger.With("run_id", id.String(), "start", start, "finish", finish)
	log.Debug("dijkstra run started", "nodes", len(nodes), "edges", snap.EdgeCount())

	// 4) Seed tables and run the main loop.
	if err := r.init(nodes); err != nil {
		return nil, fail(cfg, log, err)
	}
	res, err := r.process()
	if err != nil {
		return nil, fail(cfg, log, err)
	}

	t := &Trace{
		id:        id,
		start:     start,
		finish:    finish,
		snapshots: r.snaps,
		result:    res,
	}
	elapsed := time.Since(began)
	cfg.Recorder.RunFinished(t.Outcome(), t.Len(), elapsed)
	log.Debug("dijkstra run finished",
		"outcome", t.Outcome().String(),
		"snapshots", t.Len(),
		"cost", res.TotalCost.String(),
		"elapsed", elapsed)

	return t, nil
}

// reject reports a validation failure to the recorder and returns err.
func reject(cfg Options, err error) error {
	cfg.Recorder.RunFailed(err)
	cfg.Logger.Debug("dijkstra run rejected", "err", err)

	return err
}

// fail reports a mid-run failure to the recorder and returns err.
func fail(cfg Options, log *slog.Logger, err error) error {
	cfg.Recorder.RunFailed(err)
	log.Warn("dijkstra run aborted", "err", err)

	return err
}

// runner holds the mutable state for a single run.
type runner struct {
	g      *core.Graph // private clone; read-only within the run
	start  string
	finish string
	cfg    Options

	costs   map[string]Cost   // node → best known cost from start
	prev    map[string]string // node → predecessor ("" = none)
	front   *frontier.Frontier
	current string

	snaps []Snapshot
}

// init sets every cost to Unreached except start (0), queues start and
// records the Initialized snapshot.
func (r *runner) init(nodes []string) error {
	for _, v := range nodes {
		r.costs[v] = Unreached()
		r.prev[v] = ""
	}
	r.costs[r.start] = Finite(0)
	r.front.Insert(r.start, 0)

	return r.emit(Initialized{})
}

// process is the main loop. It returns the Result after recording either
// the Completed or the NoPathFound snapshot.
func (r *runner) process() (Result, error) {
	for !r.front.IsEmpty() {
		// 1) Read the minimum first so the Visiting snapshot still shows it queued.
		head, _ := r.front.PeekMin()
		r.current = head.ID
		if err := r.emit(Visiting{Node: head.ID}); err != nil {
			return Result{}, err
		}
		r.front.ExtractMin()

		// 2) Destination dequeued: walk back and finish.
		if r.current == r.finish {
			if err := r.emit(DestinationReached{Node: r.current}); err != nil {
				return Result{}, err
			}
			path, err := r.backtrack()
			if err != nil {
				return Result{}, err
			}
			res := Result{Path: path, TotalCost: r.costs[r.finish]}
			if err = r.emit(Completed{Path: slices.Clone(path), TotalCost: res.TotalCost}); err != nil {
				return Result{}, err
			}

			return res, nil
		}

		// 3) Otherwise evaluate every neighbor of current.
		if err := r.relax(r.current); err != nil {
			return Result{}, err
		}
	}

	// Frontier exhausted without dequeuing finish.
	if err := r.emit(NoPathFound{}); err != nil {
		return Result{}, err
	}

	return Result{TotalCost: Unreached()}, nil
}

// relax evaluates each neighbor v of u and applies strict improvements.
func (r *runner) relax(u string) error {
	base := r.costs[u]
	var (
		v    string
		w    int64
		cand Cost
	)
	for _, v = range r.g.Neighbors(u) {
		w, _ = r.g.Weight(u, v)
		cand = base.Add(w)
		candValue, _ := cand.Value()
		known := r.costs[v]

		if err := r.emit(EvaluatingNeighbor{Node: u, Neighbor: v, Weight: w, CostToNeighbor: candValue, Known: known}); err != nil {
			return err
		}

		// Strictly better only; equal costs keep the first predecessor.
		if !cand.Less(known) {
			if err := r.emit(NoImprovement{Node: u, Neighbor: v, CostToNeighbor: candValue, Known: known}); err != nil {
				return err
			}
			continue
		}

		if err := r.emit(ImprovementFound{Node: u, Neighbor: v, CostToNeighbor: candValue, Previous: known}); err != nil {
			return err
		}
		r.costs[v] = cand
		r.prev[v] = u
		r.front.Insert(v, candValue)
		if err := r.emit(ImprovementApplied{Node: u, Neighbor: v, CostToNeighbor: candValue}); err != nil {
			return err
		}
	}

	return nil
}

// backtrack walks predecessors from finish to start, recording one
// PathBacktrackStep per node, and returns the path in forward order.
func (r *runner) backtrack() ([]string, error) {
	var partial []string
	node := r.finish
	for {
		if len(partial) >= len(r.costs) {
			return nil, fmt.Errorf("%w: from %q", ErrPredecessorCycle, r.finish)
		}
		r.current = node
		partial = append(partial, node)
		if err := r.emit(PathBacktrackStep{Node: node, Partial: slices.Clone(partial)}); err != nil {
			return nil, err
		}
		p := r.prev[node]
		if p == "" {
			break
		}
		node = p
	}
	if node != r.start {
		return nil, fmt.Errorf("%w: stopped at %q", ErrPredecessorCycle, node)
	}
	slices.Reverse(partial)

	return partial, nil
}

// emit appends a deep copy of the current state tagged with d.
func (r *runner) emit(d Decision) error {
	if r.cfg.MaxSnapshots > 0 && len(r.snaps) >= r.cfg.MaxSnapshots {
		return fmt.Errorf("%w: %d", ErrSnapshotLimit, r.cfg.MaxSnapshots)
	}
	r.snaps = append(r.snaps, Snapshot{
		index:        len(r.snaps),
		costs:        maps.Clone(r.costs),
		frontier:     r.front.Entries(),
		predecessors: maps.Clone(r.prev),
		current:      r.current,
		decision:     d,
	})

	return nil
}
