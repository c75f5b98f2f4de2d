package life

import "errors"

var (
	// ErrInvalidDimension is returned for non-positive rows, columns or cell sizes.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrInvalidRate is returned for non-positive playback rates.
	ErrInvalidRate = errors.New("life: invalid rate")
	// ErrInvalidDensity is returned for seeding densities outside [0, 1].
	ErrInvalidDensity = errors.New("life: invalid density")
	// ErrInvalidRule is returned when rule notation cannot be parsed.
	ErrInvalidRule = errors.New("life: invalid rule")
)
