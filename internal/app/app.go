//go:build ebiten

package app

import (
	"slices"
	"time"

	"caengine/internal/core"
	"caengine/internal/render"
	"caengine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game adapts a core engine to the ebiten.Game interface.
type Game struct {
	eng     *core.Engine
	surface *render.PixelSurface
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	tuner   Tuner

	extent  int
	presets []string
	log     *zap.Logger
}

// New builds an engine of the given extent rendering into a pixel surface,
// selects rule and returns the host around it.
func New(rule *core.Rule, opts core.Options, hudWidth int, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Extent == 0 {
		opts.Extent = core.DefaultExtent
	}
	opts.Logger = log
	surface := render.NewPixelSurface(opts.Extent, opts.Extent)
	eng, err := core.New(surface, opts)
	if err != nil {
		return nil, err
	}
	if err := eng.SetRule(rule); err != nil {
		return nil, err
	}
	eng.Render()
	g := &Game{
		eng:     eng,
		surface: surface,
		painter: render.NewGridPainter(opts.Extent, opts.Extent),
		overlay: ui.NewOverlay(),
		extent:  opts.Extent,
		presets: core.PresetKeys(),
		log:     log,
	}
	g.tuner = Tuner{Engine: eng, OnError: g.report}
	g.hud = ui.NewHUD(g, hudWidth)
	return g, nil
}

// Engine exposes the hosted engine.
func (g *Game) Engine() *core.Engine { return g.eng }

func (g *Game) Rule() *core.Rule   { return g.eng.Rule() }
func (g *Game) Running() bool      { return g.eng.Running() }
func (g *Game) Generation() uint64 { return g.eng.Generation() }

func (g *Game) SetIntParameter(key string, value int) bool {
	return g.tuner.SetIntParameter(key, value)
}

func (g *Game) SetFloatParameter(key string, value float64) bool {
	return g.tuner.SetFloatParameter(key, value)
}

func (g *Game) report(err error) {
	g.log.Warn("engine error", zap.Error(err))
}

// Update handles per-frame input and drives the engine clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.Running() {
			g.eng.Stop()
		} else {
			g.eng.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.eng.Running() {
		if err := g.eng.Step(); err != nil {
			g.report(err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.redraw(g.eng.Reset())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.redraw(g.eng.Reseed(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.redraw(g.nextPreset())
	}

	g.overlay.Update(g.eng.Grid())
	g.hud.Update(g.extent)

	if err := g.eng.Tick(time.Now()); err != nil {
		g.report(err)
	}
	return nil
}

func (g *Game) redraw(err error) {
	if err != nil {
		g.report(err)
		return
	}
	g.eng.Render()
}

func (g *Game) nextPreset() error {
	next := 0
	if key, ok := core.KeyOf(g.eng.Rule().Name()); ok {
		next = (slices.Index(g.presets, key) + 1) % len(g.presets)
	}
	rule, err := core.Build(g.presets[next], nil)
	if err != nil {
		return err
	}
	return g.eng.SetRule(rule)
}

// Draw renders the current surface, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.surface)
	g.overlay.Draw(screen, g.eng.Grid())
	g.hud.Draw(screen, g.extent, g.extent)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.extent + g.hud.Width(), g.extent
}
