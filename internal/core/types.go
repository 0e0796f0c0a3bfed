package core

import (
	"fmt"
	"slices"
	"sort"
)

// Factory builds a rule from an optional string configuration map.
type Factory func(cfg map[string]string) (*Rule, error)

type preset struct {
	factory Factory
	rule    *Rule
}

var presets = map[string]preset{}

// Register adds a rule factory under key. The factory is invoked once with a
// nil configuration so malformed rules are rejected here rather than on first
// use.
func Register(key string, f Factory) error {
	if key == "" || f == nil {
		return fmt.Errorf("%w: empty key or factory", ErrInvalidRule)
	}
	if _, dup := presets[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicatePreset, key)
	}
	r, err := f(nil)
	if err != nil {
		return fmt.Errorf("preset %q: %w", key, err)
	}
	if r == nil {
		return fmt.Errorf("preset %q: %w: factory returned nil", key, ErrInvalidRule)
	}
	presets[key] = preset{factory: f, rule: r}
	return nil
}

// MustRegister is Register for package init functions.
func MustRegister(key string, f Factory) {
	if err := Register(key, f); err != nil {
		panic(err)
	}
}

// Presets maps each registered key to its default rule.
func Presets() map[string]*Rule {
	out := make(map[string]*Rule, len(presets))
	for k, p := range presets {
		out[k] = p.rule
	}
	return out
}

// PresetKeys lists registered keys in sorted order.
func PresetKeys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Build constructs the preset under key with cfg applied over its defaults.
func Build(key string, cfg map[string]string) (*Rule, error) {
	p, ok := presets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, key, PresetKeys())
	}
	if len(cfg) == 0 {
		return p.rule, nil
	}
	return p.factory(cfg)
}

// KeyOf returns the registry key whose default rule has the given display
// name.
func KeyOf(name string) (string, bool) {
	keys := PresetKeys()
	i := slices.IndexFunc(keys, func(k string) bool { return presets[k].rule.name == name })
	if i < 0 {
		return "", false
	}
	return keys[i], true
}
