package core

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeConfig applies flag-style key/value pairs onto out, a pointer to a
// preset's Config struct whose fields carry mapstructure tags. Values are
// parsed weakly ("0.25" into a float64, "1" into a bool). Unknown keys are an
// error.
func DecodeConfig(cfg map[string]string, out any) error {
	if len(cfg) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode preset config: %w", err)
	}
	return nil
}
