// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/playback"
)

// PlaybackMsg reports that the controller moved or changed mode.
type PlaybackMsg struct {
	Event playback.Event
}

// RunResultMsg carries the outcome of a (re)run started from the TUI.
type RunResultMsg struct {
	Trace *dijkstra.Trace
	Err   error
}
