package life

import (
	"math"
	"strconv"
)

// Config controls a Controller.
type Config struct {
	// Extent is the side of the square display area in pixels. Rows and
	// columns are both Extent / CellSize.
	Extent   int
	CellSize int

	// Rate is the playback speed in generations per second.
	Rate float64
	// Density is the live probability used by Randomize.
	Density float64
	Seed    int64

	Rules RuleSet

	// Workers bounds the goroutines used per generation. Values below two
	// step serially.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Extent:   800,
		CellSize: 10,
		Rate:     10,
		Density:  0.3,
		Seed:     42,
		Rules:    Conway(),
		Workers:  1,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range entries keep their defaults. Rules come from
// either "rule" in B/S notation or the "birth"/"survival" comma lists, the
// lists winning when both are present.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["extent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Extent = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if c.CellSize > c.Extent {
		c.CellSize = c.Extent
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && !math.IsInf(parsed, 0) {
			c.Rate = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if rs, ok := Preset(v); ok {
			c.Rules = rs
		} else if rs, err := ParseRule(v); err == nil {
			c.Rules = rs
		}
	}
	birth, hasBirth := cfg["birth"]
	survival, hasSurvival := cfg["survival"]
	if hasBirth || hasSurvival {
		b := c.Rules.Birth()
		s := c.Rules.Survival()
		if hasBirth {
			b, _ = ParseRuleList(birth)
		}
		if hasSurvival {
			s, _ = ParseRuleList(survival)
		}
		c.Rules = NewRuleSet(b, s)
	}
	return c
}
