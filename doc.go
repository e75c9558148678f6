// SPDX-License-Identifier: MIT

// Package visdijkstra is a step-by-step visualiser for Dijkstra's
// shortest-path algorithm on small undirected weighted graphs.
//
// The engine runs once up front and records every decision as an
// immutable snapshot. A playback controller then walks that sequence
// by hand or on a timer, and a narrator turns each snapshot
// into a sentence a learner can follow. In prediction mode the learner
// first guesses a route, and the guess is compared with the optimum
// once the run finishes.
//
// Packages:
//
//	core/             thread-safe undirected graph with positive integer weights
//	frontier/         min-priority queue with stable ordering of equal costs
//	dijkstra/         instrumented engine: Run returns a Trace of Snapshots
//	narrate/          human-readable descriptions of each Snapshot
//	playback/         Controller state machine (Idle, Running, Paused) and timer
//	prediction/       path guessing and comparison against the optimal route
//	builder/          graph generators and the named example presets
//	session/          editable graph and labels tying everything together
//	config/           YAML + .env + environment configuration
//	metrics/          Prometheus collectors for runs, steps and predictions
//	tui/              Bubble Tea front end
//	cmd/dijkstra-viz  command-line entry point
//
// Quick example (the "triangle" preset):
//
//	    A───5───B
//	     \      │
//	      20    10
//	        \   │
//	          C
//
// Running from A to C visits A, then B, and settles on A → B → C
// with cost 15, never taking the direct edge of weight 20.
//
//	go install github.com/tanxh33/visualise-dijkstra/cmd/dijkstra-viz@latest
//	dijkstra-viz play --example triangle --from A --to C
package visdijkstra
