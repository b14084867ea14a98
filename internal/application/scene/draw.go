package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Colors for rendering
var (
	colorMenuBG    = color.RGBA{190, 190, 130, 255}
	colorPuzzleBG  = color.RGBA{0, 0, 0, 255}
	colorText      = color.RGBA{255, 255, 255, 255}
	colorHint      = color.RGBA{200, 200, 200, 255}
	colorSelected  = color.RGBA{0, 255, 0, 255}
	colorCompleted = color.RGBA{0, 255, 0, 255}
	colorGameOver  = color.RGBA{255, 0, 0, 255}
	colorError     = color.RGBA{160, 20, 20, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 160}
)

// drawCentered draws s centered on (cx, cy) and returns its width
func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) float64 {
	w, h := text.Measure(s, face, 0)
	drawText(dst, s, face, cx-w/2, cy-h/2, clr)
	return w
}

// drawText draws s with its top-left corner at (x, y)
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
