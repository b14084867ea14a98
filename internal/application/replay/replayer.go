package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tileswap/internal/application/system"
)

// Replayer feeds recorded input back frame by frame. Its clock follows the
// recorded frame times so the puzzle countdown replays exactly.
type Replayer struct {
	data  ReplayData
	frame int
	start time.Time
	clock *system.ManualClock
}

// NewReplayer creates a new replayer whose clock starts at start
func NewReplayer(data ReplayData, start time.Time) *Replayer {
	return &Replayer{
		data:  data,
		start: start,
		clock: system.NewManualClock(start),
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput implements system.InputSource. Once the recording is exhausted
// it asks the game to quit.
func (r *Replayer) GetInput() system.InputState {
	if r.Done() {
		return system.InputState{Quit: true}
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.clock.Set(r.start.Add(time.Duration(fi.T) * time.Millisecond))

	var chars []rune
	if fi.Ch != "" {
		chars = []rune(fi.Ch)
	}

	return system.InputState{
		Up:         fi.U,
		Down:       fi.D,
		Confirm:    fi.C,
		Enter:      fi.E,
		Escape:     fi.Esc,
		Backspace:  fi.BS,
		Restart:    fi.RS,
		AnyKey:     fi.AK,
		Chars:      chars,
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		MouseClick: fi.MC,
		AnyMouse:   fi.AM,
		Quit:       fi.Q,
	}
}

// Clock returns the clock driven by the recorded frame times
func (r *Replayer) Clock() system.Clock {
	return r.clock
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every recorded frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.clock.Set(r.start)
}
