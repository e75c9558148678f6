// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	CurrentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	NeighborStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	PathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)
