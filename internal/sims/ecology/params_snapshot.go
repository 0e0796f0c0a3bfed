package ecology

import "caengine/internal/core"

// Parameters reports the configuration in HUD form. Keys match FromMap.
func (c Config) Parameters() core.ParameterSnapshot {
	params := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "Vegetation",
			Params: []core.Parameter{
				core.FloatParam("growth_chance", "Growth chance", params.GrowthChance),
				core.IntParam("lush_veg_max", "Lush vegetation max", params.LushVegMax),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.IntParam("ignite_heat", "Ignite heat", params.IgniteHeat),
				core.FloatParam("ignite_chance_per", "Ignite chance per heat", params.IgniteChancePer),
				core.FloatParam("spontaneous_fire_chance", "Spontaneous fire", params.SpontaneousFireChance),
			},
		},
		{
			Name: "Petrification",
			Params: []core.Parameter{
				core.FloatParam("petrify_chance", "Petrify chance", params.PetrifyChance),
				core.IntParam("petrify_neighbor_max", "Petrify neighbor max", params.PetrifyNeighborMax),
				core.FloatParam("revive_chance_per", "Revive chance per lush", params.ReviveChancePer),
				core.FloatParam("revive_to_blue_chance", "Revive to blue", params.ReviveToBlueChance),
				core.FloatParam("blue_convert_chance_per", "Blue conversion per neighbor", params.BlueConvertChancePer),
				core.FloatParam("blue_decay_chance", "Blue decay", params.BlueDecayChance),
				core.FloatParam("spontaneous_petr_chance", "Spontaneous petrify", params.SpontaneousPetrChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var controls = []core.ParameterControl{
	{Key: "growth_chance", Label: "Growth", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "ignite_heat", Label: "Ignite heat", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	{Key: "ignite_chance_per", Label: "Ignite/heat", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "petrify_chance", Label: "Petrify", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "blue_decay_chance", Label: "Blue decay", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
}
