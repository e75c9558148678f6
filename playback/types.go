// SPDX-License-Identifier: MIT

package playback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

// Sentinel errors.
var (
	// ErrBadInterval indicates a non-positive auto-advance interval.
	ErrBadInterval = errors.New("playback: interval must be positive")

	// ErrBadSpeedLevel indicates a speed level outside SpeedLevels.
	ErrBadSpeedLevel = errors.New("playback: speed level out of range")
)

// SpeedLevels maps slider positions to auto-advance intervals, slowest first.
var SpeedLevels = [...]time.Duration{
	2000 * time.Millisecond,
	1250 * time.Millisecond,
	800 * time.Millisecond,
	500 * time.Millisecond,
	250 * time.Millisecond,
	100 * time.Millisecond,
	65 * time.Millisecond,
}

const (
	// DefaultSpeedLevel is the slider's initial position.
	DefaultSpeedLevel = 3
	// DefaultInterval is SpeedLevels[DefaultSpeedLevel].
	DefaultInterval = 500 * time.Millisecond
)

// IntervalForSpeed returns the interval of a slider position.
func IntervalForSpeed(level int) (time.Duration, error) {
	if level < 0 || level >= len(SpeedLevels) {
		return 0, ErrBadSpeedLevel
	}
	return SpeedLevels[level], nil
}

// SpeedForInterval returns the slider position whose interval is closest
// to d.
func SpeedForInterval(d time.Duration) int {
	best := 0
	for i, iv := range SpeedLevels {
		if absDur(iv-d) < absDur(SpeedLevels[best]-d) {
			best = i
		}
	}
	return best
}

func absDur(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Mode is the controller state.
type Mode int

const (
	Idle Mode = iota
	Running
	Paused
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Direction labels a cursor move for metrics.
type Direction string

const (
	DirForward  Direction = "forward"
	DirBackward Direction = "backward"
	DirAuto     Direction = "auto"
	DirSkip     Direction = "skip"
)

// Event describes the controller after a change.
type Event struct {
	Cursor    int               // -1 when Idle
	Len       int               // snapshot count, 0 when Idle
	Mode      Mode
	Snapshot  dijkstra.Snapshot // zero when Idle
	Completed bool              // cursor is on the last snapshot
}

// Timer is a handle to one scheduled task.
type Timer interface {
	// Stop prevents the task from running; it reports whether it did.
	Stop() bool
}

// Scheduler runs f once after d on another goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// StepRecorder is notified of every cursor move. metrics.Collector
// implements it.
type StepRecorder interface {
	PlaybackStep(dir Direction)
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// SystemScheduler schedules with time.AfterFunc.
func SystemScheduler() Scheduler { return systemScheduler{} }

type nopStepRecorder struct{}

func (nopStepRecorder) PlaybackStep(Direction) {}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the time.AfterFunc scheduler. Nil is ignored.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithInterval sets the initial auto-advance interval.
// Panics if d is not positive.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic(ErrBadInterval.Error())
	}
	return func(c *Controller) {
		c.interval = d
	}
}

// WithListener registers the change callback.
func WithListener(fn func(Event)) Option {
	return func(c *Controller) {
		c.listener = fn
	}
}

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithStepRecorder sets the metrics hook. Nil is ignored.
func WithStepRecorder(r StepRecorder) Option {
	return func(c *Controller) {
		if r != nil {
			c.rec = r
		}
	}
}
