package ui

import "fmt"

// Status is the information shown by the overlay.
type Status struct {
	Generation uint64
	Population int
	Rule       string
	Running    bool
	Rate       float64
}

// StatusProvider supplies overlay content.
type StatusProvider interface {
	Status() Status
}

// FormatStatus renders s as a single line.
func FormatStatus(s Status) string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	return fmt.Sprintf("gen %d  pop %d  %s  %s  %g gen/s", s.Generation, s.Population, s.Rule, state, s.Rate)
}
