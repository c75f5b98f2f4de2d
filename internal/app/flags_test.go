package app

import (
	"flag"
	"testing"

	"lifegrid/pkg/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-cell", "4", "-fps", "24", "-rule", "highlife", "-density", "0.5", "-seed", "9", "-extent", "200"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lc := cfg.Life()
	if lc.CellSize != 4 || lc.Rate != 24 || lc.Density != 0.5 || lc.Seed != 9 || lc.Extent != 200 {
		t.Fatalf("unexpected life config %+v", lc)
	}
	if lc.Rules.String() != "B36/S23" {
		t.Fatalf("rules %v, want B36/S23", lc.Rules)
	}
}

func TestClampLimitsHostRanges(t *testing.T) {
	cfg := NewConfig()
	cfg.CellSize = 50
	cfg.FPS = 0
	cfg.Density = -1
	cfg.Clamp()
	if cfg.CellSize != life.MaxCellSize || cfg.FPS != life.MinRate || cfg.Density != 0 {
		t.Fatalf("clamped to cell=%d fps=%v density=%v", cfg.CellSize, cfg.FPS, cfg.Density)
	}
	cfg.CellSize = 0
	cfg.FPS = 500
	cfg.Clamp()
	if cfg.CellSize != life.MinCellSize || cfg.FPS != life.MaxRate {
		t.Fatalf("clamped to cell=%d fps=%v", cfg.CellSize, cfg.FPS)
	}
}

func TestRuleListsOverrideRule(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = "B3/S23"
	cfg.Birth = "3, 6, 12, x"
	lc := cfg.Life()
	if lc.Rules.String() != "B36/S23" {
		t.Fatalf("rules %v, want B36/S23", lc.Rules)
	}
	if got := cfg.Map()["birth"]; got != "3,6" {
		t.Fatalf("birth list %q, want 3,6", got)
	}
}

func TestConfigBuildsController(t *testing.T) {
	ctrl, err := life.NewController(NewConfig().Life())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	st := statusSource{ctrl: ctrl}.Status()
	if st.Rule != "B3/S23" || st.Running || st.Generation != 0 || st.Rate != 10 {
		t.Fatalf("status %+v", st)
	}
}
