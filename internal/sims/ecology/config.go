package ecology

import "caengine/internal/core"

// Params holds the probabilities and thresholds of the forest rule.
type Params struct {
	GrowthChance float64 `mapstructure:"growth_chance"`

	// IgniteHeat is the neighbor fire sum that must be exceeded before a
	// vegetated cell can catch.
	IgniteHeat      int     `mapstructure:"ignite_heat"`
	IgniteChancePer float64 `mapstructure:"ignite_chance_per"`

	PetrifyChance         float64 `mapstructure:"petrify_chance"`
	PetrifyNeighborMax    int     `mapstructure:"petrify_neighbor_max"`
	ReviveChancePer       float64 `mapstructure:"revive_chance_per"`
	ReviveToBlueChance    float64 `mapstructure:"revive_to_blue_chance"`
	LushVegMax            int     `mapstructure:"lush_veg_max"`
	BlueConvertChancePer  float64 `mapstructure:"blue_convert_chance_per"`
	BlueDecayChance       float64 `mapstructure:"blue_decay_chance"`
	SpontaneousFireChance float64 `mapstructure:"spontaneous_fire_chance"`
	SpontaneousPetrChance float64 `mapstructure:"spontaneous_petr_chance"`
}

// Config controls the forest rule.
type Config struct {
	Params `mapstructure:",squash"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			GrowthChance:          0.002,
			IgniteHeat:            10,
			IgniteChancePer:       0.01,
			PetrifyChance:         0.0003,
			PetrifyNeighborMax:    4,
			ReviveChancePer:       0.001,
			ReviveToBlueChance:    0.1,
			LushVegMax:            8,
			BlueConvertChancePer:  0.01,
			BlueDecayChance:       0.003,
			SpontaneousFireChance: 0.0000004,
			SpontaneousPetrChance: 0.0000005,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if err := core.DecodeConfig(cfg, &c); err != nil {
		return c, err
	}
	if c.Params.IgniteHeat < 0 {
		c.Params.IgniteHeat = 0
	}
	return c, nil
}
