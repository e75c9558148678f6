// SPDX-License-Identifier: MIT

package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tanxh33/visualise-dijkstra/dijkstra"
)

// Controller navigates one trace at a time. All methods are safe for
// concurrent use.
type Controller struct {
	mu       sync.Mutex
	trace    *dijkstra.Trace
	cursor   int
	mode     Mode
	interval time.Duration

	gen   uint64 // bumped on every cancel; stale tasks compare against it
	timer Timer

	sched    Scheduler
	listener func(Event)
	log      *slog.Logger
	rec      StepRecorder
}

// New returns an Idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		interval: DefaultInterval,
		sched:    systemScheduler{},
		log:      slog.New(slog.DiscardHandler),
		rec:      nopStepRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads tr with the cursor on its first snapshot and begins
// auto-advance, replacing any previous trace. A nil trace is ignored.
func (c *Controller) Start(tr *dijkstra.Trace) {
	if tr == nil || tr.Len() == 0 {
		return
	}
	c.mu.Lock()
	c.cancelLocked()
	c.trace = tr
	c.cursor = 0
	c.mode = Running
	if c.atEndLocked() {
		c.mode = Paused
	} else {
		c.scheduleLocked()
	}
	ev := c.eventLocked()
	c.mu.Unlock()

	c.log.Debug("playback started", "run_id", tr.ID(), "snapshots", tr.Len(), "interval", c.Interval())
	c.notify(ev)
}

// StepForward moves one snapshot forward and pauses.
func (c *Controller) StepForward() { c.step(1, DirForward) }

// StepBackward moves one snapshot back and pauses.
func (c *Controller) StepBackward() { c.step(-1, DirBackward) }

// step applies a manual move of delta, clamped to the trace.
func (c *Controller) step(delta int, dir Direction) {
	c.mu.Lock()
	if c.mode == Idle {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	prevCursor, prevMode := c.cursor, c.mode
	if next := c.cursor + delta; next >= 0 && next < c.trace.Len() {
		c.cursor = next
	}
	c.mode = Paused
	moved := c.cursor != prevCursor
	changed := moved || c.mode != prevMode
	ev := c.eventLocked()
	c.mu.Unlock()

	if moved {
		c.rec.PlaybackStep(dir)
	}
	if changed {
		c.notify(ev)
	}
}

// SkipToEnd jumps to the last snapshot and pauses.
func (c *Controller) SkipToEnd() {
	c.mu.Lock()
	if c.mode == Idle {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	moved := !c.atEndLocked()
	c.cursor = c.trace.LastIndex()
	c.mode = Paused
	ev := c.eventLocked()
	c.mu.Unlock()

	if moved {
		c.rec.PlaybackStep(DirSkip)
	}
	c.notify(ev)
}

// Stop cancels auto-advance and drops the trace.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.mode == Idle {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.trace = nil
	c.cursor = 0
	c.mode = Idle
	ev := c.eventLocked()
	c.mu.Unlock()

	c.log.Debug("playback stopped")
	c.notify(ev)
}

// Pause stops auto-advance, keeping the cursor.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.mode != Running {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.mode = Paused
	ev := c.eventLocked()
	c.mu.Unlock()

	c.notify(ev)
}

// Resume restarts auto-advance from the current cursor. It does nothing
// unless Paused before the last snapshot.
func (c *Controller) Resume() {
	c.mu.Lock()
	if c.mode != Paused || c.atEndLocked() {
		c.mu.Unlock()
		return
	}
	c.mode = Running
	c.scheduleLocked()
	ev := c.eventLocked()
	c.mu.Unlock()

	c.notify(ev)
}

// Toggle pauses a running controller and resumes a paused one.
func (c *Controller) Toggle() {
	if c.Mode() == Running {
		c.Pause()
		return
	}
	c.Resume()
}

// SetAutoRunInterval changes the auto-advance delay. When Running the
// pending task is replaced at once; the cursor is unchanged.
func (c *Controller) SetAutoRunInterval(d time.Duration) error {
	if d <= 0 {
		return ErrBadInterval
	}
	c.mu.Lock()
	c.interval = d
	if c.mode == Running {
		c.cancelLocked()
		c.scheduleLocked()
	}
	c.mu.Unlock()

	c.log.Debug("playback interval changed", "interval", d)
	return nil
}

// SetSpeedLevel is SetAutoRunInterval with a slider position.
func (c *Controller) SetSpeedLevel(level int) error {
	d, err := IntervalForSpeed(level)
	if err != nil {
		return err
	}
	return c.SetAutoRunInterval(d)
}

// tick is the auto-advance task for generation gen.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.mode != Running {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	if !c.atEndLocked() {
		c.cursor++
	}
	if c.atEndLocked() {
		c.mode = Paused
	} else {
		c.scheduleLocked()
	}
	ev := c.eventLocked()
	c.mu.Unlock()

	c.rec.PlaybackStep(DirAuto)
	if ev.Completed {
		c.log.Debug("playback reached the last snapshot", "cursor", ev.Cursor)
	}
	c.notify(ev)
}

// scheduleLocked starts the next auto-advance task. c.mu must be held and
// any previous task cancelled.
func (c *Controller) scheduleLocked() {
	gen := c.gen
	c.timer = c.sched.AfterFunc(c.interval, func() { c.tick(gen) })
}

// cancelLocked invalidates the outstanding task, if any.
func (c *Controller) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) atEndLocked() bool {
	return c.trace != nil && c.cursor >= c.trace.LastIndex()
}

func (c *Controller) eventLocked() Event {
	if c.trace == nil {
		return Event{Cursor: -1, Mode: c.mode}
	}
	s, _ := c.trace.Snapshot(c.cursor)
	return Event{
		Cursor:    c.cursor,
		Len:       c.trace.Len(),
		Mode:      c.mode,
		Snapshot:  s,
		Completed: c.atEndLocked(),
	}
}

func (c *Controller) notify(ev Event) {
	if c.listener != nil {
		c.listener(ev)
	}
}

// Cursor returns the current index, or false when Idle.
func (c *Controller) Cursor() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.trace == nil {
		return 0, false
	}
	return c.cursor, true
}

// Len returns the snapshot count of the loaded trace (0 when Idle).
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.trace == nil {
		return 0
	}
	return c.trace.Len()
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Interval returns the auto-advance delay.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Current returns the snapshot under the cursor, or false when Idle.
func (c *Controller) Current() (dijkstra.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.trace == nil {
		return dijkstra.Snapshot{}, false
	}
	return c.trace.Snapshot(c.cursor)
}

// AtStart reports whether the cursor is on the first snapshot.
func (c *Controller) AtStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace != nil && c.cursor == 0
}

// AtEnd reports whether the cursor is on the last snapshot.
func (c *Controller) AtEnd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.atEndLocked()
}

// Trace returns the loaded trace, or nil when Idle.
func (c *Controller) Trace() *dijkstra.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace
}
