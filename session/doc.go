// SPDX-License-Identifier: MIT

// Package session is the host side of the visualiser: it owns the graph a
// learner is editing, the node labels, and the run or prediction in
// progress.
//
// Rules enforced here and not by core.Graph:
//
//   - labels are non-empty after trimming and unique;
//   - node IDs are decimal strings handed out by a counter that only
//     moves forward, so a deleted node's ID is never given to a new node;
//   - edge weights are positive, self-loops and duplicate edges are
//     rejected;
//   - a run needs two distinct endpoints.
//
// A Session wires the engine, the playback controller, the prediction
// evaluator and the narrator together. Rendering stays outside: a front end
// installs a playback listener and asks Narration for the current text.
package session
