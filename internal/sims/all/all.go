// Package all registers every shipped preset with the core registry.
package all

import (
	_ "caengine/internal/sims/briansbrain"
	_ "caengine/internal/sims/ecology"
	_ "caengine/internal/sims/elementary"
	_ "caengine/internal/sims/life"
	_ "caengine/internal/sims/mold"
)
