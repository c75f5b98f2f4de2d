package app

import (
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"
)

// statusSource adapts a controller to the overlay.
type statusSource struct {
	ctrl *life.Controller
}

func (s statusSource) Status() ui.Status {
	return ui.Status{
		Generation: s.ctrl.Generation(),
		Population: s.ctrl.Population(),
		Rule:       s.ctrl.Rules().String(),
		Running:    s.ctrl.Running(),
		Rate:       s.ctrl.Rate(),
	}
}
