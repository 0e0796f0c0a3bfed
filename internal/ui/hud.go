//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"caengine/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status and parameter panel to the right of the grid.
type HUD struct {
	host  Host
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	rule     *core.Rule
	controls []controlState
	rects    []buttonRects

	panelOffsetX int
}

type buttonRects struct {
	top         int
	minus, plus image.Rectangle
}

// NewHUD constructs a HUD of the given panel width.
func NewHUD(host Host, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{host: host, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update follows rule swaps, refreshes values and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if r := h.host.Rule(); r != h.rule {
		h.rule = r
		h.controls = nil
		if r != nil {
			h.controls = newControlStates(r.Controls())
		}
		h.layout()
	}
	if h.rule == nil {
		return
	}
	refresh(h.controls, h.rule.Parameters())
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	title := "No rule"
	if h.rule != nil {
		title = h.rule.Name()
	}
	text.Draw(h.panel, title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	state := "stopped"
	if h.host.Running() {
		state = "running"
	}
	status := fmt.Sprintf("%s  gen %d", state, h.host.Generation())
	text.Draw(h.panel, status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		if pointInRect(px, my, h.rects[i].minus) {
			apply(&h.controls[i], -1, h.host, h.host)
			return
		}
		if pointInRect(px, my, h.rects[i].plus) {
			apply(&h.controls[i], 1, h.host, h.host)
			return
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		st := &h.controls[i]
		rc := h.rects[i]
		labelY := rc.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !st.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, st.value)
		valueX := rc.minus.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, st.value, face, valueX, labelY, valueColor)

		_, canDown := nextValue(st.control, st.current, -1)
		_, canUp := nextValue(st.control, st.current, 1)
		h.drawButton(rc.minus, "-", st.hasValue && canDown)
		h.drawButton(rc.plus, "+", st.hasValue && canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	h.rects = make([]buttonRects, len(h.controls))
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.rects[i] = buttonRects{top: top, minus: minus, plus: plus}
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + statusSpacing + 14
)
