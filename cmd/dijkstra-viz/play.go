// SPDX-License-Identifier: MIT

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tanxh33/visualise-dijkstra/playback"
	"github.com/tanxh33/visualise-dijkstra/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Step through a run in the terminal",
	Long: `Open a full-screen player for one run. Use ←/→ to step, space to
pause or resume, e to skip to the end, +/- to change the speed and q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		bridge := tui.NewEventBridge()
		sess := a.newSession(playback.WithListener(bridge.HandleEvent))
		start, finish, err := loadGraph(sess)
		if err != nil {
			return err
		}
		if _, err = sess.Run(start, finish); err != nil {
			return err
		}

		return runTUI(cmd, tui.New(sess, bridge))
	},
}

func runTUI(cmd *cobra.Command, m tui.Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
