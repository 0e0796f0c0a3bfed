package core

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Default engine geometry.
const (
	DefaultExtent = 500
	DefaultPitch  = 20
)

// Observer receives engine activity, e.g. for metrics.
type Observer interface {
	StepDone(d time.Duration)
	Rendered(d time.Duration)
	TickDone(steps int)
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Extent     int
	Pitch      int
	Period     time.Duration
	MaxCatchUp int
	Seed       int64

	Scheduler Scheduler
	Observer  Observer
	Logger    *zap.Logger
}

// Engine owns one simulation: the grid, the active rule, its clock and the
// surface it renders to. An Engine is not safe for concurrent use; hosts drive
// it from a single goroutine.
type Engine struct {
	surface Surface
	extent  int
	pitch   int
	seed    int64

	grid  *Grid
	rule  *Rule
	clock *Clock

	generation uint64

	obs Observer
	log *zap.Logger
}

// New creates an engine rendering to surface. No rule is selected yet.
func New(surface Surface, opts Options) (*Engine, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidConfiguration)
	}
	if opts.Extent == 0 {
		opts.Extent = DefaultExtent
	}
	if opts.Pitch == 0 {
		opts.Pitch = DefaultPitch
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		surface: surface,
		extent:  opts.Extent,
		pitch:   opts.Pitch,
		seed:    opts.Seed,
		clock:   NewClock(opts.Period),
		obs:     opts.Observer,
		log:     log,
	}
	e.clock.MaxCatchUp = opts.MaxCatchUp
	e.clock.SetScheduler(opts.Scheduler)
	if err := e.realloc(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) realloc() error {
	g, err := NewGrid(e.extent, e.pitch, e.rule, e.seed)
	if err != nil {
		return err
	}
	e.grid = g
	e.generation = 0
	return nil
}

// Grid returns the current grid. It is replaced on every reset.
func (e *Engine) Grid() *Grid { return e.grid }

// Rule returns the active rule, or nil.
func (e *Engine) Rule() *Rule { return e.rule }

// Clock exposes the engine's clock.
func (e *Engine) Clock() *Clock { return e.clock }

// Generation counts steps since the grid was last allocated.
func (e *Engine) Generation() uint64 { return e.generation }

// Running reports whether the clock is running.
func (e *Engine) Running() bool { return e.clock.Running() }

// SetRule swaps the active rule and starts over on a fresh grid.
func (e *Engine) SetRule(r *Rule) error {
	if r == nil {
		return fmt.Errorf("%w: nil rule", ErrInvalidRule)
	}
	prev := e.rule
	e.rule = r
	if err := e.realloc(); err != nil {
		e.rule = prev
		return err
	}
	e.surface.ClearAll()
	e.log.Debug("rule selected", zap.String("rule", r.Name()), zap.Int("w", e.grid.W), zap.Int("h", e.grid.H))
	return nil
}

// SetCellPitch reallocates the grid with a new cell size.
func (e *Engine) SetCellPitch(pitch int) error {
	prev := e.pitch
	e.pitch = pitch
	if err := e.realloc(); err != nil {
		e.pitch = prev
		return err
	}
	e.surface.ClearAll()
	e.log.Debug("cell pitch changed", zap.Int("pitch", pitch), zap.Int("w", e.grid.W), zap.Int("h", e.grid.H))
	return nil
}

// SetPeriod changes the logical tick length.
func (e *Engine) SetPeriod(d time.Duration) { e.clock.SetPeriod(d) }

// ListPresets maps each registered preset's display name to its rule.
func (e *Engine) ListPresets() map[string]*Rule {
	out := make(map[string]*Rule, len(presets))
	for _, p := range presets {
		out[p.rule.Name()] = p.rule
	}
	return out
}

// Reseed changes the seed used for new grids and resets.
func (e *Engine) Reseed(seed int64) error {
	e.seed = seed
	return e.Reset()
}

// Reset discards the grid for a fresh, uninitialized one and clears the
// surface. The clock state is unchanged.
func (e *Engine) Reset() error {
	if err := e.realloc(); err != nil {
		return err
	}
	e.surface.ClearAll()
	e.log.Debug("grid reset", zap.Int64("seed", e.seed))
	return nil
}

// Start runs the clock.
func (e *Engine) Start() {
	if e.clock.Running() {
		return
	}
	e.clock.Start()
	e.log.Debug("clock started")
}

// Stop pauses the clock. A step already in progress has completed by the
// time Stop can be called.
func (e *Engine) Stop() {
	if !e.clock.Running() {
		return
	}
	e.clock.Stop()
	e.log.Debug("clock stopped", zap.Uint64("generation", e.generation))
}

// Step advances exactly one generation and renders. It is only valid while
// the clock is stopped.
func (e *Engine) Step() error {
	if e.clock.Running() {
		return ErrRunning
	}
	if e.rule == nil {
		return ErrNoRule
	}
	if err := e.step(); err != nil {
		return err
	}
	e.render()
	return nil
}

// Tick is the host frame callback. While running it performs every step that
// is due at now, then renders once. While stopped it does nothing.
func (e *Engine) Tick(now time.Time) error {
	if !e.clock.Running() {
		return nil
	}
	if e.rule == nil {
		return ErrNoRule
	}
	n := e.clock.Advance(now)
	for k := 0; k < n; k++ {
		if err := e.step(); err != nil {
			e.Stop()
			return err
		}
	}
	if e.obs != nil {
		e.obs.TickDone(n)
	}
	e.render()
	return nil
}

// Render repaints the current grid without stepping.
func (e *Engine) Render() {
	e.render()
}

func (e *Engine) step() error {
	start := time.Now()
	if err := e.grid.Step(e.rule.update); err != nil {
		e.log.Error("step failed", zap.String("rule", e.rule.Name()), zap.Uint64("generation", e.generation), zap.Error(err))
		return fmt.Errorf("step %d: %w", e.generation, err)
	}
	e.generation++
	if e.obs != nil {
		e.obs.StepDone(time.Since(start))
	}
	return nil
}

func (e *Engine) render() {
	start := time.Now()
	e.grid.Render(e.surface, e.rule)
	if e.obs != nil {
		e.obs.Rendered(time.Since(start))
	}
}
