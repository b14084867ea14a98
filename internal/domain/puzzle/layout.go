package puzzle

import "image"

// Layout places board positions on screen. Tiles keep their aspect ratio
// and are scaled down (never up) so the grid fits the play area.
type Layout struct {
	Rows, Cols int
	TileW      int // Tile size on screen
	TileH      int
	Margin     int
	Scale      float64 // Screen pixels per source pixel
}

// NewLayout fits a grid of tiles of size tile into area (width x height).
func NewLayout(rows, cols int, tile image.Point, margin int, area image.Point) Layout {
	scale := 1.0
	needW := cols*(tile.X+margin) + margin
	needH := rows*(tile.Y+margin) + margin
	if needW > area.X && needW > 0 {
		scale = float64(area.X-(cols+1)*margin) / float64(cols*tile.X)
	}
	if needH > area.Y && needH > 0 {
		s := float64(area.Y-(rows+1)*margin) / float64(rows*tile.Y)
		if s < scale {
			scale = s
		}
	}
	if scale <= 0 {
		scale = 1
	}

	return Layout{
		Rows:   rows,
		Cols:   cols,
		TileW:  int(float64(tile.X) * scale),
		TileH:  int(float64(tile.Y) * scale),
		Margin: margin,
		Scale:  scale,
	}
}

// Rect returns the screen rectangle of board position i.
func (l Layout) Rect(i int) image.Rectangle {
	row := i / l.Cols
	col := i % l.Cols
	x := col*(l.TileW+l.Margin) + l.Margin
	y := row*(l.TileH+l.Margin) + l.Margin
	return image.Rect(x, y, x+l.TileW, y+l.TileH)
}

// PositionAt returns the board position under the screen point (x, y).
// Points in the margins or outside the grid report false.
func (l Layout) PositionAt(x, y int) (int, bool) {
	pt := image.Pt(x, y)
	for i := 0; i < l.Rows*l.Cols; i++ {
		if pt.In(l.Rect(i)) {
			return i, true
		}
	}
	return 0, false
}

// Bounds returns the screen area covered by the grid including margins.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0,
		l.Cols*(l.TileW+l.Margin)+l.Margin,
		l.Rows*(l.TileH+l.Margin)+l.Margin)
}
