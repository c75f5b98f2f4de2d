package life

import (
	"strconv"

	"lifegrid/pkg/core"
)

// Host-facing bounds for the adjustable parameters.
const (
	MinCellSize = 1
	MaxCellSize = 20
	MinRate     = 1
	MaxRate     = 60
)

// Parameters reports the current settings for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", c.grid.rows),
				intParam("cols", "Columns", c.grid.cols),
				intParam("cell_size", "Cell size", c.cellSize),
				intParam("population", "Population", c.grid.Population()),
			},
		},
		{
			Name: "Playback",
			Params: []core.Parameter{
				boolParam("running", "Running", c.running),
				floatParam("rate", "Rate (gen/s)", c.rate),
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(c.generation, 10)},
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: c.rules.String()},
				{Key: "birth", Label: "Birth", Type: core.ParamTypeString, Value: FormatRuleList(c.rules.Birth())},
				{Key: "survival", Label: "Survival", Type: core.ParamTypeString, Value: FormatRuleList(c.rules.Survival())},
				floatParam("density", "Seed density", c.density),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeInt, Step: 1, Min: MinCellSize, Max: MaxCellSize, HasMin: true, HasMax: true},
		{Key: "rate", Label: "Rate", Type: core.ParamTypeFloat, Step: 1, Min: MinRate, Max: MaxRate, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer HUD adjustment.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case "cell_size":
		if value < MinCellSize || value > MaxCellSize {
			return false
		}
		return c.SetCellSize(value) == nil
	}
	return false
}

// SetFloatParameter applies a floating point HUD adjustment.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "rate":
		if value < MinRate || value > MaxRate {
			return false
		}
		return c.SetRate(value) == nil
	case "density":
		return c.SetDensity(value) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
