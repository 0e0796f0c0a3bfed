package core

import "maps"

// Cell is an attribute bag owned by the rule that manages it. A missing key
// means the attribute was never initialized.
type Cell map[string]int

// Has reports whether the attribute has been set.
func (c Cell) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Int returns the attribute value, or 0 when unset.
func (c Cell) Int(key string) int { return c[key] }

// Bool reports whether the attribute is set to a non-zero value.
func (c Cell) Bool(key string) bool { return c[key] != 0 }

// Clone returns an independent copy. A nil cell clones to an empty one.
func (c Cell) Clone() Cell {
	if c == nil {
		return Cell{}
	}
	return maps.Clone(c)
}

// Merge copies every key of partial into c, overwriting existing values.
func (c Cell) Merge(partial Cell) {
	for k, v := range partial {
		c[k] = v
	}
}

// schema validates attribute keys written into a grid. A nil schema accepts
// any key.
type schema map[string]struct{}

func newSchema(attrs []string) schema {
	if len(attrs) == 0 {
		return nil
	}
	s := make(schema, len(attrs))
	for _, a := range attrs {
		s[a] = struct{}{}
	}
	return s
}

func (s schema) check(partial Cell) {
	if s == nil {
		return
	}
	for k := range partial {
		if _, ok := s[k]; !ok {
			panic(&AttrError{Key: k})
		}
	}
}
