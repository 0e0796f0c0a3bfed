// Package config holds run defaults and loads YAML run files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"caengine/internal/core"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Defaults shared by every host.
const (
	DefaultPreset = "life"
	DefaultSeed   = 42
	DefaultExtent = core.DefaultExtent
	DefaultPitch  = core.DefaultPitch
	DefaultPeriod = core.DefaultPeriod
)

// Run describes one engine run.
type Run struct {
	Preset     string         `yaml:"preset"`
	Seed       int64          `yaml:"seed"`
	Extent     int            `yaml:"extent"`
	Pitch      int            `yaml:"pitch"`
	Period     time.Duration  `yaml:"period"`
	MaxCatchUp int            `yaml:"max_catch_up"`
	Steps      int            `yaml:"steps"`
	Options    map[string]any `yaml:"options"`
}

// Default returns a Run populated with the package defaults.
func Default() Run {
	return Run{
		Preset: DefaultPreset,
		Seed:   DefaultSeed,
		Extent: DefaultExtent,
		Pitch:  DefaultPitch,
		Period: DefaultPeriod,
	}
}

// Load reads a YAML run file. Keys absent from the file keep their defaults.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read run config: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Run, error) {
	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Run{}, fmt.Errorf("parse run config: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Run{}, err
	}
	return r, nil
}

// Validate reports settings no engine could run with.
func (r Run) Validate() error {
	var errs []error
	if r.Preset == "" {
		errs = append(errs, errors.New("preset is required"))
	}
	if r.Extent <= 0 {
		errs = append(errs, fmt.Errorf("extent must be positive, got %d", r.Extent))
	}
	if r.Pitch <= 0 || r.Pitch > r.Extent {
		errs = append(errs, fmt.Errorf("pitch must be in [1,%d], got %d", r.Extent, r.Pitch))
	}
	if r.Period < 0 {
		errs = append(errs, fmt.Errorf("period must not be negative, got %s", r.Period))
	}
	if r.MaxCatchUp < 0 {
		errs = append(errs, fmt.Errorf("max_catch_up must not be negative, got %d", r.MaxCatchUp))
	}
	if r.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", r.Steps))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfiguration, errors.Join(errs...))
	}
	return nil
}

// PresetOptions flattens Options into the string map preset factories take.
func (r Run) PresetOptions() map[string]string {
	if len(r.Options) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Options))
	for k, v := range r.Options {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// Rule builds the configured preset.
func (r Run) Rule() (*core.Rule, error) {
	return core.Build(r.Preset, r.PresetOptions())
}

// EngineOptions maps the run onto core.Options. Scheduler, observer and
// logger are left for the host to fill in.
func (r Run) EngineOptions() core.Options {
	return core.Options{
		Extent:     r.Extent,
		Pitch:      r.Pitch,
		Period:     r.Period,
		MaxCatchUp: r.MaxCatchUp,
		Seed:       r.Seed,
	}
}

// Flags binds command-line overrides for a Run.
type Flags struct {
	fs      *pflag.FlagSet
	path    string
	vals    Run
	options map[string]string
}

// BindFlags registers the run flags on fs with defaults taken from Default.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs, vals: Default()}
	fs.StringVarP(&f.path, "config", "c", "", "YAML run file; flags override its values")
	fs.StringVarP(&f.vals.Preset, "preset", "p", f.vals.Preset, "rule preset key")
	fs.Int64Var(&f.vals.Seed, "seed", f.vals.Seed, "random seed")
	fs.IntVar(&f.vals.Extent, "extent", f.vals.Extent, "surface edge length in pixels")
	fs.IntVar(&f.vals.Pitch, "pitch", f.vals.Pitch, "cell edge length in pixels")
	fs.DurationVar(&f.vals.Period, "period", f.vals.Period, "logical step period")
	fs.IntVar(&f.vals.MaxCatchUp, "max-catch-up", f.vals.MaxCatchUp, "cap on steps per tick (0 = unbounded)")
	fs.IntVarP(&f.vals.Steps, "steps", "n", f.vals.Steps, "generations to compute")
	fs.StringToStringVarP(&f.options, "opt", "o", nil, "preset option key=value (repeatable)")
	return f
}

// Resolve loads the --config file, if any, and applies every flag the user
// set explicitly on top of it.
func (f *Flags) Resolve() (Run, error) {
	r := Default()
	if f.path != "" {
		loaded, err := Load(f.path)
		if err != nil {
			return Run{}, err
		}
		r = loaded
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "preset":
			r.Preset = f.vals.Preset
		case "seed":
			r.Seed = f.vals.Seed
		case "extent":
			r.Extent = f.vals.Extent
		case "pitch":
			r.Pitch = f.vals.Pitch
		case "period":
			r.Period = f.vals.Period
		case "max-catch-up":
			r.MaxCatchUp = f.vals.MaxCatchUp
		case "steps":
			r.Steps = f.vals.Steps
		case "opt":
			if r.Options == nil {
				r.Options = map[string]any{}
			}
			for k, v := range f.options {
				r.Options[k] = v
			}
		}
	})
	if err := r.Validate(); err != nil {
		return Run{}, err
	}
	return r, nil
}
