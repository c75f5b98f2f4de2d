package life

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxNeighbors is the size of the Moore neighbourhood.
const MaxNeighbors = 8

// RuleSet holds the neighbour counts that cause birth and survival. The zero
// value never births and never keeps a cell alive.
type RuleSet struct {
	birth    [MaxNeighbors + 1]bool
	survival [MaxNeighbors + 1]bool
}

// NewRuleSet builds a RuleSet from neighbour counts. Counts outside
// [0, MaxNeighbors] can never occur on a Moore grid and are dropped.
func NewRuleSet(birth, survival []int) RuleSet {
	var rs RuleSet
	for _, n := range birth {
		if validCount(n) {
			rs.birth[n] = true
		}
	}
	for _, n := range survival {
		if validCount(n) {
			rs.survival[n] = true
		}
	}
	return rs
}

// Conway returns the standard B3/S23 rule.
func Conway() RuleSet {
	return NewRuleSet([]int{3}, []int{2, 3})
}

// IsBirth reports whether a dead cell with n live neighbours becomes live.
func (rs RuleSet) IsBirth(n int) bool {
	return validCount(n) && rs.birth[n]
}

// IsSurvival reports whether a live cell with n live neighbours stays live.
func (rs RuleSet) IsSurvival(n int) bool {
	return validCount(n) && rs.survival[n]
}

// Next returns the state of a cell in the following generation.
func (rs RuleSet) Next(alive bool, neighbors int) bool {
	if alive {
		return rs.IsSurvival(neighbors)
	}
	return rs.IsBirth(neighbors)
}

// Birth returns the birth counts in ascending order.
func (rs RuleSet) Birth() []int { return counts(rs.birth) }

// Survival returns the survival counts in ascending order.
func (rs RuleSet) Survival() []int { return counts(rs.survival) }

// String renders the rule in B/S notation, e.g. "B3/S23".
func (rs RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range rs.Birth() {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range rs.Survival() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// ParseRule parses B/S notation such as "B36/S23" or "b3/s23". Either half
// may be empty ("B3/S"). The digit 9 is dropped like any other impossible
// count; anything else that is not a digit is an error.
func ParseRule(s string) (RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return RuleSet{}, fmt.Errorf("%w: %q: want B<digits>/S<digits>", ErrInvalidRule, s)
	}
	var birth, survival []int
	for _, part := range parts {
		if part == "" {
			return RuleSet{}, fmt.Errorf("%w: %q: empty section", ErrInvalidRule, s)
		}
		var dst *[]int
		switch part[0] {
		case 'B', 'b':
			dst = &birth
		case 'S', 's':
			dst = &survival
		default:
			return RuleSet{}, fmt.Errorf("%w: %q: section %q must start with B or S", ErrInvalidRule, s, part)
		}
		for _, r := range part[1:] {
			if r < '0' || r > '9' {
				return RuleSet{}, fmt.Errorf("%w: %q: unexpected %q", ErrInvalidRule, s, r)
			}
			*dst = append(*dst, int(r-'0'))
		}
	}
	if (parts[0][0] == 'B' || parts[0][0] == 'b') == (parts[1][0] == 'B' || parts[1][0] == 'b') {
		return RuleSet{}, fmt.Errorf("%w: %q: need one B and one S section", ErrInvalidRule, s)
	}
	return NewRuleSet(birth, survival), nil
}

// ParseRuleList parses a comma-separated list of neighbour counts such as
// "2, 3". Tokens that are not integers or lie outside [0, MaxNeighbors] are
// returned in rejected instead of failing the whole list.
func ParseRuleList(s string) (values []int, rejected []string) {
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || !validCount(n) {
			rejected = append(rejected, tok)
			continue
		}
		values = append(values, n)
	}
	return values, rejected
}

// FormatRuleList renders counts in the form accepted by ParseRuleList.
func FormatRuleList(values []int) string {
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func validCount(n int) bool { return n >= 0 && n <= MaxNeighbors }

func counts(set [MaxNeighbors + 1]bool) []int {
	var out []int
	for n, ok := range set {
		if ok {
			out = append(out, n)
		}
	}
	return out
}
