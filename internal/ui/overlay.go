//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status line on top of the grid. H toggles it.
type Overlay struct {
	src    StatusProvider
	hidden bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src StatusProvider) *Overlay {
	o := &Overlay{src: src}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden || o.src == nil {
		return
	}
	line := FormatStatus(o.src.Status())
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*overlayPad), float64(bounds.Dy()+2*overlayPad))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, line, face, overlayPad, overlayPad+bounds.Dy(), color.RGBA{R: 240, G: 240, B: 120, A: 255})
}

const overlayPad = 4
