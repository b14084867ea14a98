package replay

// FormatVersion is written to every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int    `json:"f"`             // Frame number
	T   int64  `json:"t"`             // Milliseconds since recording start
	U   bool   `json:"u,omitempty"`   // Up
	D   bool   `json:"d,omitempty"`   // Down
	C   bool   `json:"c,omitempty"`   // Confirm
	E   bool   `json:"e,omitempty"`   // Enter
	Esc bool   `json:"esc,omitempty"` // Escape
	BS  bool   `json:"bs,omitempty"`  // Backspace
	RS  bool   `json:"rs,omitempty"`  // Restart
	AK  bool   `json:"ak,omitempty"`  // AnyKey
	Ch  string `json:"ch,omitempty"`  // Typed characters
	MX  int    `json:"mx"`            // MouseX
	MY  int    `json:"my"`            // MouseY
	MC  bool   `json:"mc,omitempty"`  // MouseClick
	AM  bool   `json:"am,omitempty"`  // AnyMouse
	Q   bool   `json:"q,omitempty"`   // Quit
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
