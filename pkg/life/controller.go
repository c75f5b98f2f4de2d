package life

import (
	"fmt"
	"math"
	"sync"

	"lifegrid/pkg/core"
)

// Controller owns a simulation: the current grid, the active rules and the
// playback state. It never starts timers itself; a driver calls Step or
// StepIfRunning at the cadence reported by Rate.
//
// All methods are safe for concurrent use. Failing configuration calls leave
// the controller exactly as it was.
type Controller struct {
	mu sync.Mutex

	grid  *Grid
	spare *Grid
	rules RuleSet

	running    bool
	rate       float64
	extent     int
	cellSize   int
	density    float64
	generation uint64
	workers    int

	rng *core.RNG
}

// NewController creates an idle controller with an all-dead grid.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Extent <= 0 {
		return nil, fmt.Errorf("%w: extent %d", ErrInvalidDimension, cfg.Extent)
	}
	n, err := cellsPerSide(cfg.Extent, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	if err := checkRate(cfg.Rate); err != nil {
		return nil, err
	}
	if err := checkDensity(cfg.Density); err != nil {
		return nil, err
	}
	c := &Controller{
		rules:    cfg.Rules,
		rate:     cfg.Rate,
		extent:   cfg.Extent,
		cellSize: cfg.CellSize,
		density:  cfg.Density,
		workers:  cfg.Workers,
		rng:      core.NewRNG(cfg.Seed),
	}
	c.allocate(n)
	return c, nil
}

// Name identifies the simulation.
func (c *Controller) Name() string { return "life" }

// Step advances the grid by one generation regardless of playback state.
func (c *Controller) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step()
}

// StepIfRunning advances one generation only while running and reports
// whether it did. Drivers use it so that a Stop that has returned is never
// followed by another generation.
func (c *Controller) StepIfRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return false
	}
	c.step()
	return true
}

func (c *Controller) step() {
	// Both buffers are owned by c and share dimensions, so StepParallel
	// cannot fail here.
	_ = StepParallel(c.spare, c.grid, c.rules, c.workers)
	c.grid, c.spare = c.spare, c.grid
	c.generation++
}

// Start switches to Running. It is a no-op when already running.
func (c *Controller) Start() {
	c.mu.Lock()
	c.running = true
	c.mu.Unlock()
}

// Stop switches to Idle. It is a no-op when already idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

// ToggleCell flips the cell at the wrapped coordinate and returns its new state.
func (c *Controller) ToggleCell(row, col int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Toggle(row, col)
}

// Place sets the live cells of p with its top-left corner at (row, col).
// Cells outside the pattern are left untouched.
func (c *Controller) Place(row, col int, p Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, pt := range p.Cells {
		c.grid.Set(row+pt.Row, col+pt.Col, true)
	}
}

// Reset kills every cell and pauses playback.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear()
	c.generation = 0
	c.running = false
}

// Randomize seeds every cell independently live with probability density
// and remembers density for later calls. Playback state is unchanged.
func (c *Controller) Randomize(density float64) error {
	if err := checkDensity(density); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.density = density
	c.rng.FillDensity(c.grid.cells, density)
	c.generation = 0
	return nil
}

// Reseed replaces the random source used by Randomize.
func (c *Controller) Reseed(seed int64) {
	c.mu.Lock()
	c.rng = core.NewRNG(seed)
	c.mu.Unlock()
}

// SetRules replaces the rules from neighbour-count lists. Counts outside
// [0, 8] are dropped. The new rules apply from the next generation.
func (c *Controller) SetRules(birth, survival []int) {
	c.SetRuleSet(NewRuleSet(birth, survival))
}

// SetRuleSet replaces the rules. The new rules apply from the next generation.
func (c *Controller) SetRuleSet(rs RuleSet) {
	c.mu.Lock()
	c.rules = rs
	c.mu.Unlock()
}

// SetRate changes the playback rate in generations per second.
func (c *Controller) SetRate(rate float64) error {
	if err := checkRate(rate); err != nil {
		return err
	}
	c.mu.Lock()
	c.rate = rate
	c.mu.Unlock()
	return nil
}

// SetDensity changes the default density used by the HUD and host reseeding.
func (c *Controller) SetDensity(density float64) error {
	if err := checkDensity(density); err != nil {
		return err
	}
	c.mu.Lock()
	c.density = density
	c.mu.Unlock()
	return nil
}

// SetCellSize changes the cell size and reallocates an all-dead grid of
// Extent/size cells per side. Existing cells are discarded even when the
// dimensions do not change.
func (c *Controller) SetCellSize(size int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, err := cellsPerSide(c.extent, size)
	if err != nil {
		return err
	}
	c.cellSize = size
	c.allocate(n)
	c.generation = 0
	return nil
}

func (c *Controller) allocate(n int) {
	c.grid = &Grid{rows: n, cols: n, cells: make([]uint8, n*n)}
	c.spare = &Grid{rows: n, cols: n, cells: make([]uint8, n*n)}
}

// Snapshot returns an independent copy of the current grid.
func (c *Controller) Snapshot() *Grid {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Clone()
}

// Render hands a snapshot of the current grid to r.
func (c *Controller) Render(r core.Renderer) error {
	return r.Render(c.Snapshot())
}

// Running reports whether playback is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Rate reports the playback rate in generations per second.
func (c *Controller) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// CellSize reports the configured cell size in pixels.
func (c *Controller) CellSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cellSize
}

// Extent reports the side of the display area in pixels.
func (c *Controller) Extent() int { return c.extent }

// Density reports the density last used or configured for Randomize.
func (c *Controller) Density() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.density
}

// Rules returns the active rules.
func (c *Controller) Rules() RuleSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rules
}

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Size()
}

// Rows returns the number of grid rows.
func (c *Controller) Rows() int { return c.Size().H }

// Cols returns the number of grid columns.
func (c *Controller) Cols() int { return c.Size().W }

// Generation counts steps since the last reset, randomize or resize.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Population counts live cells.
func (c *Controller) Population() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Population()
}

func cellsPerSide(extent, cellSize int) (int, error) {
	if cellSize <= 0 {
		return 0, fmt.Errorf("%w: cell size %d", ErrInvalidDimension, cellSize)
	}
	n := extent / cellSize
	if n <= 0 {
		return 0, fmt.Errorf("%w: cell size %d leaves no cells in extent %d", ErrInvalidDimension, cellSize, extent)
	}
	return n, nil
}

func checkRate(rate float64) error {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: %v generations per second", ErrInvalidRate, rate)
	}
	return nil
}

func checkDensity(density float64) error {
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	return nil
}
