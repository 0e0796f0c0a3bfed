package core

import "time"

// ClockState is either Stopped or Running.
type ClockState uint8

const (
	Stopped ClockState = iota
	Running
)

func (s ClockState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Clock converts wall-clock ticks into a number of logical steps at a fixed
// period, so a slow frame runs several steps and a fast frame may run none.
type Clock struct {
	period time.Duration
	state  ClockState
	last   time.Time

	// MaxCatchUp caps the steps returned by one Advance. Zero means no cap.
	MaxCatchUp int

	sched Scheduler
}

// NewClock returns a stopped clock with the given logical period. Non-positive
// periods fall back to DefaultPeriod.
func NewClock(period time.Duration) *Clock {
	c := &Clock{}
	c.SetPeriod(period)
	return c
}

// DefaultPeriod is the logical tick length used when none is configured.
const DefaultPeriod = 30 * time.Millisecond

// SetPeriod changes the logical tick length.
func (c *Clock) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	c.period = period
}

// Period returns the logical tick length.
func (c *Clock) Period() time.Duration { return c.period }

// SetScheduler attaches a host scheduler that is asked for ticks while the
// clock runs.
func (c *Clock) SetScheduler(s Scheduler) { c.sched = s }

// State reports the current state.
func (c *Clock) State() ClockState { return c.state }

// Running reports whether the clock is running.
func (c *Clock) Running() bool { return c.state == Running }

// Start transitions to Running. The next Advance establishes the baseline.
func (c *Clock) Start() {
	if c.state == Running {
		return
	}
	c.state = Running
	c.last = time.Time{}
	if c.sched != nil {
		c.sched.RequestTick()
	}
}

// Stop transitions to Stopped and forgets the baseline so a later Start does
// not catch up on the paused interval.
func (c *Clock) Stop() {
	if c.state == Stopped {
		return
	}
	c.state = Stopped
	c.last = time.Time{}
	if c.sched != nil {
		c.sched.CancelTick()
	}
}

// Advance records a host tick at now and returns how many logical steps are
// due. It returns 0 while stopped and on the first tick after Start.
func (c *Clock) Advance(now time.Time) int {
	if c.state != Running {
		return 0
	}
	if c.sched != nil {
		defer c.sched.RequestTick()
	}
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed <= 0 {
		return 0
	}
	n := int(elapsed / c.period)
	if c.MaxCatchUp > 0 && n > c.MaxCatchUp {
		n = c.MaxCatchUp
	}
	return n
}
