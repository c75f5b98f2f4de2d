package life

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRuleSetDropsOutOfRangeCounts(t *testing.T) {
	rs := NewRuleSet([]int{-1, 3, 9, 100}, []int{2, 3, 8, 3})
	if got := rs.Birth(); !slices.Equal(got, []int{3}) {
		t.Fatalf("Birth() = %v, want [3]", got)
	}
	if got := rs.Survival(); !slices.Equal(got, []int{2, 3, 8}) {
		t.Fatalf("Survival() = %v, want [2 3 8]", got)
	}
}

func TestRuleSetPredicates(t *testing.T) {
	rs := Conway()
	for n := -2; n <= 10; n++ {
		wantBirth := n == 3
		wantSurvival := n == 2 || n == 3
		if rs.IsBirth(n) != wantBirth {
			t.Fatalf("IsBirth(%d) = %v", n, rs.IsBirth(n))
		}
		if rs.IsSurvival(n) != wantSurvival {
			t.Fatalf("IsSurvival(%d) = %v", n, rs.IsSurvival(n))
		}
	}
	if rs.Next(false, 2) || !rs.Next(false, 3) || !rs.Next(true, 2) || rs.Next(true, 4) {
		t.Fatal("Next disagrees with B3/S23")
	}
}

func TestZeroRuleSetKillsEverything(t *testing.T) {
	var rs RuleSet
	for n := 0; n <= MaxNeighbors; n++ {
		if rs.Next(true, n) || rs.Next(false, n) {
			t.Fatalf("zero rule set produced a live cell for n=%d", n)
		}
	}
	if rs.String() != "B/S" {
		t.Fatalf("String() = %q, want B/S", rs.String())
	}
}

func TestRuleSetString(t *testing.T) {
	if got := Conway().String(); got != "B3/S23" {
		t.Fatalf("Conway().String() = %q", got)
	}
	if got := NewRuleSet([]int{6, 3}, []int{3, 2}).String(); got != "B36/S23" {
		t.Fatalf("String() = %q, want B36/S23", got)
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in   string
		want RuleSet
	}{
		{"B3/S23", Conway()},
		{"b3/s23", Conway()},
		{" S23/B3 ", Conway()},
		{"B36/S23", NewRuleSet([]int{3, 6}, []int{2, 3})},
		{"B2/S", NewRuleSet([]int{2}, nil)},
		{"B39/S23", Conway()},
	}
	for _, tc := range tests {
		got, err := ParseRule(tc.in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRule(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRuleRejectsMalformedNotation(t *testing.T) {
	for _, in := range []string{"", "B3", "23/3", "B3/B4", "S2/S3", "B3x/S23", "/S23", "B3/S23/X"} {
		if _, err := ParseRule(in); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q) error = %v, want ErrInvalidRule", in, err)
		}
	}
}

func TestParseRuleList(t *testing.T) {
	values, rejected := ParseRuleList("2, 3, x, 12, , -1,8")
	if !slices.Equal(values, []int{2, 3, 8}) {
		t.Fatalf("values = %v, want [2 3 8]", values)
	}
	if !slices.Equal(rejected, []string{"x", "12", "-1"}) {
		t.Fatalf("rejected = %q", rejected)
	}

	values, rejected = ParseRuleList("")
	if len(values) != 0 || len(rejected) != 0 {
		t.Fatalf("empty list parsed as %v / %v", values, rejected)
	}
	if got := FormatRuleList([]int{2, 3}); got != "2,3" {
		t.Fatalf("FormatRuleList = %q", got)
	}
}

func TestPresets(t *testing.T) {
	rs, ok := Preset("Conway")
	if !ok || rs != Conway() {
		t.Fatalf("Preset(Conway) = %v, %v", rs, ok)
	}
	if rs, ok := Preset("highlife"); !ok || rs.String() != "B36/S23" {
		t.Fatalf("Preset(highlife) = %v, %v", rs, ok)
	}
	if _, ok := Preset("nope"); ok {
		t.Fatal("unknown preset should not resolve")
	}
	names := PresetNames()
	if !slices.IsSorted(names) || !slices.Contains(names, "seeds") {
		t.Fatalf("PresetNames() = %v", names)
	}
}
