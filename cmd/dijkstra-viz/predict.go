// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tanxh33/visualise-dijkstra/narrate"
	"github.com/tanxh33/visualise-dijkstra/playback"
	"github.com/tanxh33/visualise-dijkstra/prediction"
	"github.com/tanxh33/visualise-dijkstra/session"
	"github.com/tanxh33/visualise-dijkstra/tui"
)

var (
	predictVia  []string
	predictPlay bool

	errNotNeighbour = errors.New("not a neighbour of the previous node")
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Guess the shortest path, then compare it with the algorithm",
	Long: `Give your predicted path with --via as node labels after the start,
e.g. --via B,C. The algorithm then runs and both paths are compared.`,
	Example: `  dijkstra-viz predict --example triangle --via C
  dijkstra-viz predict --example city --via Park,Market,Station,Office --play`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(predictPlay)
		if err != nil {
			return err
		}
		defer a.close()

		var (
			bridge *tui.EventBridge
			sess   *session.Session
		)
		if predictPlay {
			bridge = tui.NewEventBridge()
			sess = a.newSession(playback.WithListener(bridge.HandleEvent))
		} else {
			sess = a.newSession()
		}
		start, finish, err := loadGraph(sess)
		if err != nil {
			return err
		}
		if err = sess.BeginPrediction(start, finish); err != nil {
			return err
		}
		for _, ref := range predictVia {
			id, err := resolveNode(sess, ref)
			if err != nil {
				return err
			}
			if !sess.SelectNode(id) {
				return fmt.Errorf("%q: %w", ref, errNotNeighbour)
			}
		}
		if _, err = sess.RunPrediction(); err != nil {
			return err
		}

		if predictPlay {
			return runTUI(cmd, tui.New(sess, bridge))
		}
		cmp, _ := sess.Comparison()
		sess.Stop()
		printComparison(cmd.OutOrStdout(), narrate.New(start, finish, labelled(sess)), cmp)
		return nil
	},
}

func init() {
	f := predictCmd.Flags()
	f.StringSliceVar(&predictVia, "via", nil, "predicted nodes after the start, by label")
	f.BoolVar(&predictPlay, "play", false, "open the player after comparing")
}

func printComparison(w io.Writer, n *narrate.Narrator, c prediction.Comparison) {
	fmt.Fprintln(w, n.Heading())
	fmt.Fprintf(w, "Your path:     %s (cost %d)\n", n.FormatPath(c.Predicted), c.PredictedCost)
	if len(c.Optimal) == 0 {
		fmt.Fprintln(w, "Shortest path: none, the finish is unreachable")
		return
	}
	fmt.Fprintf(w, "Shortest path: %s (cost %s)\n", n.FormatPath(c.Optimal), c.OptimalCost)
	switch {
	case !c.ReachesFinish:
		fmt.Fprintln(w, "Your path stops before the finish.")
	case c.IsOptimal:
		fmt.Fprintln(w, "You found a shortest path!")
	default:
		fmt.Fprintf(w, "Your path costs %d more than the shortest.\n", c.Excess)
	}
}
