// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the playback controls.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	End    key.Binding
	Faster key.Binding
	Slower key.Binding
	Rerun  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		End:    key.NewBinding(key.WithKeys("e", "end"), key.WithHelp("e", "skip to end")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Rerun:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run again")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.End, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Toggle, k.End},
		{k.Faster, k.Slower, k.Rerun, k.Help, k.Quit},
	}
}
