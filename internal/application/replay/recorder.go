package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tileswap/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	start     time.Time
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay.
// Frame times are stored relative to start.
func NewRecorder(seed int64, start time.Time) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			StartTime: start.Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		start:     start,
		recording: true,
	}
}

// RecordFrame records a single frame's input read at now
func (r *Recorder) RecordFrame(input system.InputState, now time.Time) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:   r.frame,
		T:   now.Sub(r.start).Milliseconds(),
		U:   input.Up,
		D:   input.Down,
		C:   input.Confirm,
		E:   input.Enter,
		Esc: input.Escape,
		BS:  input.Backspace,
		RS:  input.Restart,
		AK:  input.AnyKey,
		Ch:  string(input.Chars),
		MX:  input.MouseX,
		MY:  input.MouseY,
		MC:  input.MouseClick,
		AM:  input.AnyMouse,
		Q:   input.Quit,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on the given time
func GenerateFilename(now time.Time) string {
	return fmt.Sprintf("replay_%s.json", now.Format("20060102_150405"))
}
