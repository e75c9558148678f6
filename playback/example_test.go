// SPDX-License-Identifier: MIT
package playback_test

import (
	"fmt"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/playback"
)

// ExampleController steps through a run by hand.
func ExampleController() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	tr, _ := dijkstra.Run(g, "A", "B")

	c := playback.New(playback.WithListener(func(ev playback.Event) {
		if ev.Mode == playback.Idle {
			fmt.Println("idle")
			return
		}
		fmt.Printf("%d/%d %s %s\n", ev.Cursor, ev.Len-1, ev.Mode, ev.Snapshot.Kind())
	}))
	c.Start(tr)
	c.Pause()
	c.StepForward()
	c.SkipToEnd()
	c.Stop()
	// Output:
	// 0/9 running Initialized
	// 0/9 paused Initialized
	// 1/9 paused Visiting
	// 9/9 paused Completed
	// idle
}
