// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanxh33/visualise-dijkstra/core"
	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/playback"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	return c, reg
}

func triangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 10)
	g.AddEdge("A", "C", 20)
	return g
}

func TestNewCollector_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.ErrorIs(t, err, ErrRegistrationFailed)
}

func TestCollector_RunOutcomes(t *testing.T) {
	c, reg := newTestCollector(t)
	g := triangle()
	g.AddNode("Z")

	_, err := dijkstra.Run(g, "A", "C", dijkstra.WithRecorder(c))
	require.NoError(t, err)
	_, err = dijkstra.Run(g, "A", "Z", dijkstra.WithRecorder(c))
	require.NoError(t, err)
	_, err = dijkstra.Run(g, "A", "C", dijkstra.WithRecorder(c))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.runs.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("no_path")))

	n, err := testutil.GatherAndCount(reg, "visdijkstra_engine_snapshots_per_run")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one histogram series")
}

func TestCollector_RunFailures(t *testing.T) {
	c, _ := newTestCollector(t)

	_, err := dijkstra.Run(triangle(), "A", "Q", dijkstra.WithRecorder(c))
	require.ErrorIs(t, err, dijkstra.ErrFinishNotFound)
	_, err = dijkstra.Run(triangle(), "A", "C", dijkstra.WithRecorder(c), dijkstra.WithMaxSnapshots(1))
	require.ErrorIs(t, err, dijkstra.ErrSnapshotLimit)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues(ReasonValidation)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues(ReasonAborted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.runs.WithLabelValues("found")))
}

func TestCollector_DirectCalls(t *testing.T) {
	c, _ := newTestCollector(t)

	c.RunFinished(dijkstra.OutcomeFound, 20, time.Millisecond)
	c.RunFailed(errors.New("boom"))
	c.PlaybackStep(playback.DirForward)
	c.PlaybackStep(playback.DirForward)
	c.PlaybackStep(playback.DirSkip)
	c.PredictionCompared("optimal")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues(ReasonAborted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.playbackSteps.WithLabelValues("forward")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.playbackSteps.WithLabelValues("skip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.predictions.WithLabelValues("optimal")))
}

func TestCollector_PlaybackController(t *testing.T) {
	c, _ := newTestCollector(t)
	tr, err := dijkstra.Run(triangle(), "A", "C")
	require.NoError(t, err)

	ctl := playback.New(playback.WithStepRecorder(c), playback.WithScheduler(noTimers{}))
	ctl.Start(tr)
	ctl.StepForward()
	ctl.StepForward()
	ctl.StepBackward()
	ctl.SkipToEnd()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.playbackSteps.WithLabelValues("forward")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.playbackSteps.WithLabelValues("backward")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.playbackSteps.WithLabelValues("skip")))
}

// noTimers never fires, leaving the controller under manual control.
type noTimers struct{}

func (noTimers) AfterFunc(time.Duration, func()) playback.Timer { return stopped{} }

type stopped struct{}

func (stopped) Stop() bool { return false }
