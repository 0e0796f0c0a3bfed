package ui

import "caengine/internal/core"

// Host is what the HUD reads and adjusts.
type Host interface {
	Rule() *core.Rule
	Running() bool
	Generation() uint64
	core.IntParameterSetter
	core.FloatParameterSetter
}
