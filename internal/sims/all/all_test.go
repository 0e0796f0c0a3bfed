package all

import (
	"testing"

	"caengine/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestEveryPresetRegistered(t *testing.T) {
	assert.Equal(t, []string{"briansbrain", "elementary", "forest", "life", "mold"}, core.PresetKeys())
	for key, r := range core.Presets() {
		assert.NotEmpty(t, r.Name(), key)
		assert.NotEmpty(t, r.Attrs(), key)
	}
}
