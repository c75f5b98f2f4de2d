package life

import (
	"sort"
	"strings"
)

var presets = map[string]RuleSet{}

// RegisterPreset adds a named rule. Names are case-insensitive.
func RegisterPreset(name string, rs RuleSet) {
	if name == "" {
		return
	}
	presets[strings.ToLower(name)] = rs
}

// Preset looks up a named rule.
func Preset(name string) (RuleSet, bool) {
	rs, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return rs, ok
}

// PresetNames lists registered rule names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPreset("conway", Conway())
	RegisterPreset("highlife", NewRuleSet([]int{3, 6}, []int{2, 3}))
	RegisterPreset("seeds", NewRuleSet([]int{2}, nil))
	RegisterPreset("daynight", NewRuleSet([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8}))
	RegisterPreset("maze", NewRuleSet([]int{3}, []int{1, 2, 3, 4, 5}))
	RegisterPreset("replicator", NewRuleSet([]int{1, 3, 5, 7}, []int{1, 3, 5, 7}))
	RegisterPreset("lifewithoutdeath", NewRuleSet([]int{3}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}))
}
