// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
	"github.com/tanxh33/visualise-dijkstra/playback"
)

// Namespace prefixes every series.
const Namespace = "visdijkstra"

// Failure reasons for runs_failed_total.
const (
	ReasonValidation = "validation"
	ReasonAborted    = "aborted"
)

// ErrRegistrationFailed wraps a registry rejection.
var ErrRegistrationFailed = errors.New("metrics: registration failed")

// snapshotBuckets covers traces from a handful of steps up to large grids.
var snapshotBuckets = prometheus.ExponentialBuckets(8, 2, 12)

// Collector records engine and playback activity. Safe for concurrent use.
type Collector struct {
	runs          *prometheus.CounterVec
	failures      *prometheus.CounterVec
	snapshots     prometheus.Histogram
	duration      prometheus.Histogram
	playbackSteps *prometheus.CounterVec
	predictions   *prometheus.CounterVec
}

// NewCollector creates the series and registers them on reg. A nil reg
// uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "engine",
			Name:      "runs_total",
			Help:      "Completed runs by outcome.",
		}, []string{"outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "engine",
			Name:      "runs_failed_total",
			Help:      "Runs that returned an error, by reason.",
		}, []string{"reason"}),
		snapshots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "engine",
			Name:      "snapshots_per_run",
			Help:      "Snapshots recorded by a completed run.",
			Buckets:   snapshotBuckets,
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a completed run.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		playbackSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "playback",
			Name:      "steps_total",
			Help:      "Cursor moves by direction.",
		}, []string{"direction"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "prediction",
			Name:      "comparisons_total",
			Help:      "Predicted paths compared with the computed one, by verdict.",
		}, []string{"verdict"}),
	}

	for _, col := range []prometheus.Collector{
		c.runs, c.failures, c.snapshots, c.duration, c.playbackSteps, c.predictions,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
	}

	// Pre-create label values so every series is exported from the start.
	c.runs.WithLabelValues(dijkstra.OutcomeFound.String())
	c.runs.WithLabelValues(dijkstra.OutcomeNoPath.String())
	c.failures.WithLabelValues(ReasonValidation)
	c.failures.WithLabelValues(ReasonAborted)

	return c, nil
}

// RunFinished implements dijkstra.Recorder.
func (c *Collector) RunFinished(outcome dijkstra.Outcome, snapshots int, elapsed time.Duration) {
	c.runs.WithLabelValues(outcome.String()).Inc()
	c.snapshots.Observe(float64(snapshots))
	c.duration.Observe(elapsed.Seconds())
}

// RunFailed implements dijkstra.Recorder.
func (c *Collector) RunFailed(err error) {
	reason := ReasonAborted
	if dijkstra.IsValidationError(err) {
		reason = ReasonValidation
	}
	c.failures.WithLabelValues(reason).Inc()
}

// PlaybackStep implements playback.StepRecorder.
func (c *Collector) PlaybackStep(dir playback.Direction) {
	c.playbackSteps.WithLabelValues(string(dir)).Inc()
}

// PredictionCompared counts one prediction verdict. It implements
// session.PredictionRecorder.
func (c *Collector) PredictionCompared(verdict string) {
	c.predictions.WithLabelValues(verdict).Inc()
}

var (
	_ dijkstra.Recorder     = (*Collector)(nil)
	_ playback.StepRecorder = (*Collector)(nil)
)
