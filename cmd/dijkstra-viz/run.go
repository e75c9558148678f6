// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/narrate"
	"github.com/tanxh33/visualise-dijkstra/session"
)

var runSteps bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run once and print the shortest path",
	Long: `Run Dijkstra's algorithm on the chosen graph and print the result.
With --steps every recorded decision is printed with its explanation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		sess := a.newSession()
		start, finish, err := loadGraph(sess)
		if err != nil {
			return err
		}
		tr, err := sess.Run(start, finish)
		if err != nil {
			return err
		}
		sess.Stop()

		n := narrate.New(start, finish, labelled(sess))
		out := cmd.OutOrStdout()
		if runSteps {
			printSteps(out, n, tr)
		}
		printResult(out, n, tr)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runSteps, "steps", "s", false, "print every step with its explanation")
}

func printSteps(w io.Writer, n *narrate.Narrator, tr *dijkstra.Trace) {
	for _, s := range tr.Snapshots() {
		fmt.Fprintf(w, "── %s · %s\n", narrate.Step(s.Index(), tr.Len()), s.Kind())
		for _, line := range n.Describe(s) {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintln(w, "   "+line)
		}
		fmt.Fprintln(w)
	}
}

func printResult(w io.Writer, n *narrate.Narrator, tr *dijkstra.Trace) {
	fmt.Fprintln(w, n.Heading())
	res := tr.Result()
	if !res.Found() {
		fmt.Fprintln(w, "No path.")
		return
	}
	fmt.Fprintf(w, "Shortest path: %s (cost %s)\n", n.FormatPath(res.Path), res.TotalCost)
	fmt.Fprintf(w, "Snapshots: %d · run %s\n", tr.Len(), tr.ID())
}

// labelled is a session-backed label lookup for narrators built outside the
// session.
func labelled(sess *session.Session) narrate.Option {
	return narrate.WithLabels(sess.Label)
}
