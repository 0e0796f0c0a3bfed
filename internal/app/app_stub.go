//go:build !ebiten

package app

import (
	"errors"

	"caengine/internal/core"

	"go.uber.org/zap"
)

// ErrNoGUI is returned by New when the binary was built without ebiten.
var ErrNoGUI = errors.New("the desktop host requires building with the 'ebiten' tag")

// Game is the headless placeholder for the ebiten host.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*core.Rule, core.Options, int, *zap.Logger) (*Game, error) {
	return nil, ErrNoGUI
}
