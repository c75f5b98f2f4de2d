package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Snapshot is a read-only view of a grid handed to presentation code.
// Implementations must not be retained across the next simulation mutation.
type Snapshot interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
	// Cells returns the row-major cell buffer, 1 for live and 0 for dead.
	Cells() []uint8
}

// Renderer paints a snapshot onto some presentation surface.
type Renderer interface {
	Render(s Snapshot) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(s Snapshot) error

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) error { return f(s) }
