package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeScheduler struct {
	requests, cancels int
}

func (s *fakeScheduler) RequestTick() { s.requests++ }
func (s *fakeScheduler) CancelTick()  { s.cancels++ }

func TestClockCatchUp(t *testing.T) {
	const p = 30 * time.Millisecond
	c := NewClock(p)
	t0 := time.Unix(100, 0)

	assert.Zero(t, c.Advance(t0), "stopped clock never steps")

	c.Start()
	assert.Equal(t, Running, c.State())
	assert.Zero(t, c.Advance(t0), "first tick sets the baseline")
	assert.Equal(t, 3, c.Advance(t0.Add(p*7/2)), "3.5 periods run 3 steps")
	assert.Equal(t, 0, c.Advance(t0.Add(p*7/2+p/2)), "sub-period frame runs none")
	assert.Equal(t, 1, c.Advance(t0.Add(p*7/2+p/2+p)))
}

func TestClockStopClearsBaseline(t *testing.T) {
	const p = 10 * time.Millisecond
	c := NewClock(p)
	t0 := time.Unix(0, 0)
	c.Start()
	c.Advance(t0)
	c.Stop()
	assert.Equal(t, Stopped, c.State())

	c.Start()
	assert.Zero(t, c.Advance(t0.Add(time.Hour)), "no burst after a pause")
	assert.Equal(t, 2, c.Advance(t0.Add(time.Hour+2*p)))
}

func TestClockMaxCatchUp(t *testing.T) {
	c := NewClock(time.Millisecond)
	c.MaxCatchUp = 5
	t0 := time.Unix(0, 0)
	c.Start()
	c.Advance(t0)
	assert.Equal(t, 5, c.Advance(t0.Add(time.Second)))
}

func TestClockBackwardsTimeRunsNothing(t *testing.T) {
	c := NewClock(time.Millisecond)
	t0 := time.Unix(50, 0)
	c.Start()
	c.Advance(t0)
	assert.Zero(t, c.Advance(t0.Add(-time.Second)))
}

func TestClockDefaultPeriod(t *testing.T) {
	assert.Equal(t, DefaultPeriod, NewClock(0).Period())
	assert.Equal(t, DefaultPeriod, NewClock(-time.Second).Period())
}

func TestClockScheduler(t *testing.T) {
	s := &fakeScheduler{}
	c := NewClock(time.Millisecond)
	c.SetScheduler(s)

	c.Start()
	c.Start()
	assert.Equal(t, 1, s.requests)

	c.Advance(time.Unix(0, 0))
	c.Advance(time.Unix(1, 0))
	assert.Equal(t, 3, s.requests, "every running tick asks for the next one")

	c.Stop()
	c.Stop()
	assert.Equal(t, 1, s.cancels)
	c.Advance(time.Unix(2, 0))
	assert.Equal(t, 3, s.requests, "stopped ticks do not reschedule")
}
