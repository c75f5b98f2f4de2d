package app

import (
	"flag"
	"log"
	"strconv"

	"lifegrid/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Extent   int
	CellSize int
	FPS      float64
	Density  float64
	Seed     int64
	Workers  int

	// Rule is a preset name or B/S notation; Birth and Survival are
	// comma-separated counts that override the matching half of Rule.
	Rule     string
	Birth    string
	Survival string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Extent:   d.Extent,
		CellSize: d.CellSize,
		FPS:      d.Rate,
		Density:  d.Density,
		Seed:     d.Seed,
		Workers:  d.Workers,
		Rule:     "conway",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Extent, "extent", c.Extent, "side of the square grid area in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (1-20)")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "generations per second (1-60)")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability when randomizing (0-1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset or B/S notation, e.g. highlife or B36/S23")
	fs.StringVar(&c.Birth, "birth", c.Birth, "comma-separated birth counts, overrides -rule")
	fs.StringVar(&c.Survival, "survival", c.Survival, "comma-separated survival counts, overrides -rule")
}

// Clamp limits the host-adjustable values to the ranges the UI offers.
func (c *Config) Clamp() {
	c.CellSize = min(max(c.CellSize, life.MinCellSize), life.MaxCellSize)
	c.FPS = min(max(c.FPS, life.MinRate), life.MaxRate)
	c.Density = min(max(c.Density, 0), 1)
}

// Map converts the flags into the key/value form read by life.FromMap.
// Rejected rule tokens are logged and dropped.
func (c *Config) Map() map[string]string {
	m := map[string]string{
		"extent":    strconv.Itoa(c.Extent),
		"cell_size": strconv.Itoa(c.CellSize),
		"rate":      strconv.FormatFloat(c.FPS, 'f', -1, 64),
		"density":   strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"workers":   strconv.Itoa(c.Workers),
	}
	if c.Rule != "" {
		if _, ok := life.Preset(c.Rule); !ok {
			if _, err := life.ParseRule(c.Rule); err != nil {
				log.Printf("ignoring rule: %v", err)
			}
		}
		m["rule"] = c.Rule
	}
	if c.Birth != "" {
		m["birth"] = checkRuleList("birth", c.Birth)
	}
	if c.Survival != "" {
		m["survival"] = checkRuleList("survival", c.Survival)
	}
	return m
}

// Life builds the controller configuration.
func (c *Config) Life() life.Config {
	c.Clamp()
	return life.FromMap(c.Map())
}

func checkRuleList(name, list string) string {
	values, rejected := life.ParseRuleList(list)
	if len(rejected) > 0 {
		log.Printf("dropping %s values outside 0-8: %q", name, rejected)
	}
	return life.FormatRuleList(values)
}
