// Package puzzle implements the swap tile puzzle: board, selection,
// completion and countdown. It knows nothing about rendering; tiles carry the
// source rectangle of the picture they were cut from.
package puzzle

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
)

var (
	ErrInvalidGrid   = errors.New("grid dimensions must be positive")
	ErrImageTooSmall = errors.New("image too small for grid")
	ErrOutOfRange    = errors.New("board position out of range")
)

// Tile is one region of the source picture plus its solved position.
type Tile struct {
	Origin int             // row*cols+col in the unshuffled layout
	Src    image.Rectangle // Region of the source picture
}

// Board is the current arrangement of tiles by position, along with the
// solved reference it is compared against.
type Board struct {
	rows, cols int
	tiles      []Tile
	solved     []Tile
}

// NewBoard cuts bounds into rows*cols equal tiles in row-major order.
// Remainder pixels on the right and bottom edges are dropped.
func NewBoard(rows, cols int, bounds image.Rectangle) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}

	tw := bounds.Dx() / cols
	th := bounds.Dy() / rows
	if tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("%w: %dx%d into %dx%d", ErrImageTooSmall, bounds.Dx(), bounds.Dy(), rows, cols)
	}

	solved := make([]Tile, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			min := bounds.Min.Add(image.Pt(col*tw, row*th))
			solved = append(solved, Tile{
				Origin: row*cols + col,
				Src:    image.Rectangle{Min: min, Max: min.Add(image.Pt(tw, th))},
			})
		}
	}

	tiles := make([]Tile, len(solved))
	copy(tiles, solved)

	return &Board{rows: rows, cols: cols, tiles: tiles, solved: solved}, nil
}

// Shuffle applies a uniform random permutation to the current arrangement.
func (b *Board) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Swap exchanges the tiles at positions i and j.
func (b *Board) Swap(i, j int) error {
	if !b.InRange(i) || !b.InRange(j) {
		return fmt.Errorf("%w: swap %d and %d on %d tiles", ErrOutOfRange, i, j, len(b.tiles))
	}
	b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	return nil
}

// Solved reports whether every position holds its origin tile.
func (b *Board) Solved() bool {
	for i, t := range b.tiles {
		if t.Origin != b.solved[i].Origin {
			return false
		}
	}
	return true
}

// InRange reports whether i is a valid board position.
func (b *Board) InRange(i int) bool {
	return i >= 0 && i < len(b.tiles)
}

// At returns the tile currently at position i.
func (b *Board) At(i int) Tile {
	return b.tiles[i]
}

// Tiles returns a copy of the current arrangement.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Reference returns a copy of the solved arrangement.
func (b *Board) Reference() []Tile {
	out := make([]Tile, len(b.solved))
	copy(out, b.solved)
	return out
}

func (b *Board) Len() int  { return len(b.tiles) }
func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// TileSize returns the size of one tile in source pixels.
func (b *Board) TileSize() image.Point {
	return b.solved[0].Src.Size()
}
