package app

import (
	"caengine/internal/config"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the desktop host.
type Config struct {
	run *config.Flags

	HUDWidth int
	TPS      int
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{HUDWidth: 260, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	c.run = config.BindFlags(fs)
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "debug logging")
}

// Run resolves the engine run settings from flags and the optional YAML file.
func (c *Config) Run() (config.Run, error) {
	if c.run == nil {
		r := config.Default()
		return r, r.Validate()
	}
	return c.run.Resolve()
}
