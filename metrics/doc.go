// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus series for runs, playback and
// predictions.
//
// A Collector implements dijkstra.Recorder and playback.StepRecorder, so it
// plugs straight into the engine and the controller:
//
//	c, _ := metrics.NewCollector(reg)
//	tr, err := dijkstra.Run(g, s, f, dijkstra.WithRecorder(c))
//	ctl := playback.New(playback.WithStepRecorder(c))
//
// All series live under the "visdijkstra" namespace.
package metrics
