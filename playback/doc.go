// SPDX-License-Identifier: MIT

// Package playback owns the cursor over a finished dijkstra.Trace and the
// auto-advance timer that moves it.
//
// Modes:
//
//	Idle    → no trace; every navigation call is a silent no-op.
//	Running → auto-advance is scheduled; it steps forward once per interval.
//	Paused  → the cursor only moves on explicit StepForward/StepBackward.
//
// Transitions:
//
//	Start(trace)       any   → Running (cursor 0)
//	StepForward/Back   R|P   → Paused  (clamped at both ends)
//	SkipToEnd          R|P   → Paused  (cursor = last)
//	Pause / Resume     R ↔ P (Resume is a no-op at the last index)
//	Stop               any   → Idle
//	auto-advance       R     → R, or Paused on reaching the last index
//
// Timer ownership:
//
//   - At most one auto-advance task is outstanding. Every transition that
//     stops, restarts or reschedules auto-advance first stops the previous
//     Timer and bumps a generation counter; a task that fires after its
//     generation has moved on does nothing.
//   - The Scheduler is injectable so tests drive time by hand.
//
// Observation:
//
//   - WithListener registers a callback that receives an Event after every
//     cursor or mode change. It is called without the controller's lock
//     held, so it may call back into the Controller.
//
// Speed levels mirror a seven-position slider:
//
//	level:    0     1     2    3    4    5    6
//	interval: 2s    1.25s 800ms 500ms 250ms 100ms 65ms
package playback
