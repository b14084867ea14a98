package replay

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/tileswap/internal/application/system"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// createTestReplayData creates idle replay data, one frame every 16ms
func createTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		StartTime: epoch.Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			T:  int64(i * 16),
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Seed: 42,
		Frames: []FrameInput{
			{F: 0, T: 0, AK: true, MX: 100, MY: 100},
			{F: 1, T: 16, D: true, C: true, E: true, MX: 110, MY: 95},
			{F: 2, T: 33, Ch: "ab", BS: true, MC: true, AM: true, MX: 120, MY: 90},
		},
	}

	replayer := NewReplayer(data, epoch)

	// Frame 0
	input := replayer.GetInput()
	assert.True(t, input.AnyKey)
	assert.False(t, input.Down)
	assert.Equal(t, 100, input.MouseX)
	assert.Nil(t, input.Chars)

	// Frame 1
	input = replayer.GetInput()
	assert.True(t, input.Down)
	assert.True(t, input.Confirm)
	assert.True(t, input.Enter)
	assert.Equal(t, epoch.Add(16*time.Millisecond), replayer.Clock().Now())

	// Frame 2
	input = replayer.GetInput()
	assert.Equal(t, []rune("ab"), input.Chars)
	assert.True(t, input.Backspace)
	assert.True(t, input.MouseClick)
	assert.True(t, input.AnyMouse)
	assert.False(t, input.Quit)
	assert.Equal(t, epoch.Add(33*time.Millisecond), replayer.Clock().Now())

	// End of frames
	assert.True(t, replayer.Done())
	input = replayer.GetInput()
	assert.True(t, input.Quit, "exhausted replay asks to quit")
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(createTestReplayData(5, 100, 100), epoch)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Seed(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 99999}, epoch)
	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(createTestReplayData(3, 100, 100), epoch)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	require.True(t, replayer.Done())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, epoch, replayer.Clock().Now())

	// Should be able to read again
	input := replayer.GetInput()
	assert.False(t, input.Quit)
	assert.Equal(t, 100, input.MouseX)
}

func TestReplayer_ImplementsInputSource(t *testing.T) {
	var _ system.InputSource = (*Replayer)(nil)
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(7, epoch)
	require.True(t, rec.IsRecording())

	rec.RecordFrame(system.InputState{Up: true, MouseX: 3}, epoch)
	rec.RecordFrame(system.InputState{Chars: []rune("é!"), Escape: true}, epoch.Add(50*time.Millisecond))

	data := rec.Data()
	require.Len(t, data.Frames, 2)
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.Equal(t, int64(50), data.Frames[1].T)
	assert.Equal(t, "é!", data.Frames[1].Ch)
	assert.True(t, data.Frames[1].Esc)

	rec.Stop()
	rec.RecordFrame(system.InputState{Down: true}, epoch.Add(time.Second))
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
}

func TestRecorder_SaveEmptyFails(t *testing.T) {
	rec := NewRecorder(1, epoch)
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecorder_SaveAndReplay(t *testing.T) {
	inputs := []system.InputState{
		{AnyKey: true},
		{Down: true},
		{Confirm: true, Enter: true},
		{Chars: []rune("Kim")},
		{MouseClick: true, AnyMouse: true, MouseX: 40, MouseY: 60},
	}

	rec := NewRecorder(2024, epoch)
	for i, in := range inputs {
		rec.RecordFrame(in, epoch.Add(time.Duration(i)*time.Second))
	}

	path := filepath.Join(t.TempDir(), GenerateFilename(epoch))
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2024), data.Seed)

	replayer := NewReplayer(*data, epoch)
	for i, want := range inputs {
		got := replayer.GetInput()
		assert.Equal(t, want, got, "frame %d", i)
		assert.Equal(t, epoch.Add(time.Duration(i)*time.Second), replayer.Clock().Now())
	}
	assert.True(t, replayer.Done())
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestGenerateFilename(t *testing.T) {
	assert.Equal(t, "replay_20240101_120000.json", GenerateFilename(epoch))
}
