package core

// Button is one of the abstract game actions raw hardware input is
// normalized into. The set is closed; the simulation never sees scancodes.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonJump
	ButtonAccept
	ButtonLeftMouse
	ButtonMax
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonJump:
		return "jump"
	case ButtonAccept:
		return "accept"
	case ButtonLeftMouse:
		return "left_mouse"
	}
	return "unknown"
}

// Scancode is a raw, layout-independent hardware key code as reported by
// the platform (evdev numbering).
type Scancode uint32

// Per-action alternates are deliberate: arrow keys and WASD both drive
// movement, main Enter and keypad Enter both accept.
var scancodeButtons = map[Scancode]Button{
	17:  ButtonUp,     // W
	103: ButtonUp,     // up arrow
	31:  ButtonDown,   // S
	108: ButtonDown,   // down arrow
	30:  ButtonLeft,   // A
	105: ButtonLeft,   // left arrow
	32:  ButtonRight,  // D
	106: ButtonRight,  // right arrow
	57:  ButtonJump,   // space
	28:  ButtonAccept, // enter
	96:  ButtonAccept, // keypad enter
}

// ButtonForScancode resolves a raw scancode to its abstract button. The
// second return is false for unmapped codes, which callers log and ignore.
func ButtonForScancode(code Scancode) (Button, bool) {
	b, ok := scancodeButtons[code]
	return b, ok
}

// InputState holds the current pressed state of every abstract button, the
// latest observed cursor position, and two transient per-cycle flags. It is
// created once at boot and mutated only by the loop in response to
// classified events.
type InputState struct {
	buttons [ButtonMax]bool
	cursorX float64
	cursorY float64

	// Raised on press/release edges, cleared once per update cycle by the
	// loop between update and render. Never reset by the event source.
	pressedThisCycle  bool
	releasedThisCycle bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// UpdateButton sets the button's pressed state unconditionally. Setting the
// same state twice is a no-op in effect: the transient flags are raised only
// on an actual edge.
func (in *InputState) UpdateButton(b Button, pressed bool) {
	if b >= ButtonMax {
		return
	}
	if in.buttons[b] != pressed {
		if pressed {
			in.pressedThisCycle = true
		} else {
			in.releasedThisCycle = true
		}
	}
	in.buttons[b] = pressed
}

func (in *InputState) IsPressed(b Button) bool {
	if b >= ButtonMax {
		return false
	}
	return in.buttons[b]
}

// SetCursor overwrites the cursor position. Last write wins, no smoothing.
func (in *InputState) SetCursor(x, y float64) {
	in.cursorX = x
	in.cursorY = y
}

func (in *InputState) Cursor() (float64, float64) {
	return in.cursorX, in.cursorY
}

func (in *InputState) PressedThisCycle() bool {
	return in.pressedThisCycle
}

func (in *InputState) ReleasedThisCycle() bool {
	return in.releasedThisCycle
}

// ResetEvents clears exactly the two transient flags. Persistent button
// states survive until a matching press/release event changes them.
func (in *InputState) ResetEvents() {
	in.pressedThisCycle = false
	in.releasedThisCycle = false
}
