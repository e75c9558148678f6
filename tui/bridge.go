// SPDX-License-Identifier: MIT

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tanxh33/visualise-dijkstra/playback"
	"github.com/tanxh33/visualise-dijkstra/session"
)

// EventBridge carries playback events into the Bubble Tea loop.
//
// Controller listeners may run inside Update (manual steps) or on timer
// goroutines (auto-advance), so HandleEvent never blocks: it keeps only the
// latest event. The model re-reads the session on every PlaybackMsg, which
// makes a replaced event harmless.
type EventBridge struct {
	ch chan PlaybackMsg
}

// NewEventBridge returns an empty bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{ch: make(chan PlaybackMsg, 1)}
}

// HandleEvent has the playback listener signature.
func (b *EventBridge) HandleEvent(ev playback.Event) {
	msg := PlaybackMsg{Event: ev}
	for {
		select {
		case b.ch <- msg:
			return
		default:
		}
		// Drop the stale pending event and try again.
		select {
		case <-b.ch:
		default:
		}
	}
}

// WaitForEventCmd blocks until the next playback event.
func WaitForEventCmd(b *EventBridge) tea.Cmd {
	return func() tea.Msg {
		return <-b.ch
	}
}

// RunCmd reruns the session between start and finish.
func RunCmd(s *session.Session, start, finish string) tea.Cmd {
	return func() tea.Msg {
		tr, err := s.Run(start, finish)
		return RunResultMsg{Trace: tr, Err: err}
	}
}
