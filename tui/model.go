// SPDX-License-Identifier: MIT

// Package tui is a Bubble Tea front end for a session: it shows the graph,
// the cost table, the frontier and the narration of the snapshot under the
// playback cursor, and maps keys to playback commands.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tanxh33/visualise-dijkstra/narrate"
	"github.com/tanxh33/visualise-dijkstra/playback"
	"github.com/tanxh33/visualise-dijkstra/session"
)

const (
	minWidth      = 60
	minHeight     = 12
	leftPanelPart = 45 // percent of the width
)

// Model implements tea.Model.
type Model struct {
	sess   *session.Session
	bridge *EventBridge

	keys      keyMap
	help      help.Model
	narration viewport.Model

	last   playback.Event
	speed  int
	err    error
	width  int
	height int
}

// New returns a Model driving s. The session's controller must deliver its
// events to b (see playback.WithListener).
func New(s *session.Session, b *EventBridge) Model {
	m := Model{
		sess:      s,
		bridge:    b,
		keys:      defaultKeys(),
		help:      help.New(),
		narration: viewport.New(40, 10),
		speed:     playback.SpeedForInterval(s.Controller().Interval()),
	}
	m.syncNarration()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return WaitForEventCmd(m.bridge)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case PlaybackMsg:
		m.last = msg.Event
		m.syncNarration()
		return m, WaitForEventCmd(m.bridge)

	case RunResultMsg:
		m.err = msg.Err
		m.syncNarration()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.narration, cmd = m.narration.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctl := m.sess.Controller()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sess.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		ctl.StepBackward()
	case key.Matches(msg, m.keys.Next):
		ctl.StepForward()
	case key.Matches(msg, m.keys.Toggle):
		ctl.Toggle()
	case key.Matches(msg, m.keys.End):
		ctl.SkipToEnd()
	case key.Matches(msg, m.keys.Faster):
		m.setSpeed(m.speed + 1)
	case key.Matches(msg, m.keys.Slower):
		m.setSpeed(m.speed - 1)
	case key.Matches(msg, m.keys.Rerun):
		if start, finish, ok := m.sess.Endpoints(); ok {
			return m, RunCmd(m.sess, start, finish)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.narration, cmd = m.narration.Update(msg)
		return m, cmd
	}

	m.syncNarration()
	return m, nil
}

func (m *Model) setSpeed(level int) {
	level = min(max(level, 0), len(playback.SpeedLevels)-1)
	if err := m.sess.Controller().SetSpeedLevel(level); err == nil {
		m.speed = level
	}
}

// layout sizes the narration viewport from the window.
func (m *Model) layout() {
	right := m.width - m.width*leftPanelPart/100
	m.narration.Width = max(right-4, 10)
	m.narration.Height = max(m.height-6, 3)
	m.syncNarration()
}

func (m *Model) syncNarration() {
	text := strings.Join(m.sess.Narration(), "\n")
	if m.narration.Width > 0 {
		text = lipgloss.NewStyle().Width(m.narration.Width).Render(text)
	}
	m.narration.SetContent(text)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d.", m.width, m.height, minWidth, minHeight)
	}

	label := labeler(m.sess.Label)
	leftWidth := m.width*leftPanelPart/100 - 4

	var left string
	if snap, ok := m.sess.Controller().Current(); ok {
		h := highlightsOf(snap)
		left = strings.Join([]string{
			renderTable(snap, label),
			"",
			renderFrontier(snap.Frontier(), label),
			"",
			renderEdges(m.sess.Edges(), label, h),
		}, "\n")
	} else {
		left = renderEdges(m.sess.Edges(), label, highlights{})
	}
	left = BorderStyle.Width(leftWidth).Render(left)
	right := BorderStyle.Render(m.narration.View())

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteByte('\n')
	b.WriteString(m.statusBar())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	title := m.sess.Heading()
	if title == "" {
		title = "Dijkstra's algorithm"
	}
	return TitleStyle.Render(title)
}

func (m Model) statusBar() string {
	ctl := m.sess.Controller()
	parts := []string{ctl.Mode().String()}
	if cur, ok := ctl.Cursor(); ok {
		parts = append([]string{narrate.Step(cur, ctl.Len())}, parts...)
		if ctl.AtEnd() {
			parts = append(parts, "complete")
		}
	}
	parts = append(parts, "speed "+ctl.Interval().String())
	if tr := ctl.Trace(); tr != nil {
		parts = append(parts, MutedStyle.Render("run "+tr.ID()))
	}
	bar := StatusBarStyle.Render(strings.Join(parts, " · "))
	if m.err != nil {
		bar += " " + ErrorStyle.Render(m.err.Error())
	}
	return bar
}
