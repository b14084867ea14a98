package puzzle

import (
	"image"
	"math/rand"
	"time"
)

// NoSelection marks an empty selection cursor
const NoSelection = -1

// Config describes one puzzle instance
type Config struct {
	Rows      int
	Cols      int
	TimeLimit time.Duration
}

// ClickResult tells what a click on a board position did
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickSelected
	ClickDeselected
	ClickSwapped
)

// String returns the string representation of the click result
func (r ClickResult) String() string {
	switch r {
	case ClickIgnored:
		return "Ignored"
	case ClickSelected:
		return "Selected"
	case ClickDeselected:
		return "Deselected"
	case ClickSwapped:
		return "Swapped"
	default:
		return "Unknown"
	}
}

// Puzzle is one round of the swap puzzle. Completed and game over are
// terminal and mutually exclusive; restarting means building a new Puzzle.
type Puzzle struct {
	board     *Board
	timer     Timer
	selected  int
	swaps     int
	completed bool
	gameOver  bool
}

// New cuts a picture of the given bounds into a shuffled board and starts
// the countdown at now.
func New(cfg Config, bounds image.Rectangle, rng *rand.Rand, now time.Time) (*Puzzle, error) {
	board, err := NewBoard(cfg.Rows, cfg.Cols, bounds)
	if err != nil {
		return nil, err
	}
	board.Shuffle(rng)

	return newPuzzle(board, cfg.TimeLimit, now), nil
}

// NewWithBoard starts a round on an already arranged board.
func NewWithBoard(board *Board, limit time.Duration, now time.Time) *Puzzle {
	return newPuzzle(board, limit, now)
}

func newPuzzle(board *Board, limit time.Duration, now time.Time) *Puzzle {
	return &Puzzle{
		board:    board,
		timer:    NewTimer(limit, now),
		selected: NoSelection,
	}
}

// Click applies the selection/swap protocol to board position i.
func (p *Puzzle) Click(i int, now time.Time) ClickResult {
	if p.completed || p.gameOver || !p.board.InRange(i) {
		return ClickIgnored
	}

	switch {
	case p.selected == NoSelection:
		p.selected = i
		return ClickSelected
	case p.selected == i:
		p.selected = NoSelection
		return ClickDeselected
	}

	// Both positions are in range, so Swap cannot fail
	_ = p.board.Swap(i, p.selected)
	p.selected = NoSelection
	p.swaps++
	p.checkCompleted(now)
	return ClickSwapped
}

// Update advances the countdown. A solved board completes the round, an
// expired countdown ends it.
func (p *Puzzle) Update(now time.Time) {
	if p.completed || p.gameOver {
		return
	}
	if p.checkCompleted(now) {
		return
	}
	if p.timer.Expired(now) {
		p.gameOver = true
		p.selected = NoSelection
	}
}

func (p *Puzzle) checkCompleted(now time.Time) bool {
	if !p.board.Solved() {
		return false
	}
	p.completed = true
	p.timer.Stop(now)
	return true
}

// Remaining returns the time left, frozen once the puzzle is completed.
func (p *Puzzle) Remaining(now time.Time) time.Duration {
	return p.timer.Remaining(now)
}

// Selected returns the selected position or NoSelection.
func (p *Puzzle) Selected() int {
	return p.selected
}

func (p *Puzzle) Swaps() int {
	return p.swaps
}

func (p *Puzzle) Completed() bool {
	return p.completed
}

func (p *Puzzle) GameOver() bool {
	return p.gameOver
}

// Finished reports whether the round reached a terminal sub-state.
func (p *Puzzle) Finished() bool {
	return p.completed || p.gameOver
}

// Board returns the board being played.
func (p *Puzzle) Board() *Board {
	return p.board
}

// TimeLimit returns the full countdown length.
func (p *Puzzle) TimeLimit() time.Duration {
	return p.timer.Limit()
}
