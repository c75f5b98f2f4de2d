//go:build ebiten

package app

import (
	"image/color"
	"log"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life controller to the ebiten.Game interface. It is both
// the playback driver, stepping the controller from Update at the
// controller's rate, and the presentation adapter.
type Game struct {
	ctrl    *life.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for the provided controller.
func New(ctrl *life.Controller) *Game {
	size := ctrl.Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ctrl, ui.PanelWidth),
		overlay:  ui.NewOverlay(statusSource{ctrl: ctrl}),
		clock:    core.NewFixedStep(ctrl.Rate()),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Running() {
			g.ctrl.Stop()
		} else {
			g.clock.Reset()
			g.ctrl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctrl.Randomize(g.ctrl.Density()); err != nil {
			log.Printf("randomize: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.adjustCellSize(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.adjustCellSize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.adjustRate(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.adjustRate(-1)
	}
	if row, col, ok := g.cursorCell(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			g.ctrl.Place(row, col, life.Glider)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.ctrl.ToggleCell(row, col)
		}
	}

	g.hud.Update(g.ctrl.Extent())
	g.overlay.Update()

	g.clock.SetRate(g.ctrl.Rate())
	if g.ctrl.Running() && g.clock.ShouldStep() {
		g.ctrl.StepIfRunning()
	}
	return nil
}

// cursorCell maps the cursor to a grid cell when it is over the grid area.
func (g *Game) cursorCell() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	size := g.ctrl.CellSize()
	extent := g.ctrl.Rows() * size
	if x < 0 || y < 0 || x >= extent || y >= extent {
		return 0, 0, false
	}
	row, col := life.CellFromPointer(x, y, size)
	return row, col, true
}

func (g *Game) adjustCellSize(delta int) {
	next := min(max(g.ctrl.CellSize()+delta, life.MinCellSize), life.MaxCellSize)
	if next == g.ctrl.CellSize() {
		return
	}
	if err := g.ctrl.SetCellSize(next); err != nil {
		log.Printf("cell size: %v", err)
	}
}

func (g *Game) adjustRate(delta float64) {
	next := min(max(g.ctrl.Rate()+delta, life.MinRate), life.MaxRate)
	if err := g.ctrl.SetRate(next); err != nil {
		log.Printf("rate: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	g.painter.Resize(snap.Cols(), snap.Rows())
	g.painter.Blit(screen, snap.Cells(), g.onColor, g.offColor, g.ctrl.CellSize())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctrl.Extent(), g.ctrl.Extent())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctrl.Extent() + g.hud.Width(), g.ctrl.Extent()
}
