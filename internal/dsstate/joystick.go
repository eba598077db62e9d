package dsstate

// Joystick capability caps the wire format enforces (spec.md §3).
const (
	MaxJoysticks = 6
	MaxAxes      = 6
	MaxButtons   = 10
	MaxHats      = 1
)

// JoystickSource is the capability the protocol core requires from its host
// for joystick enumeration: count of attached joysticks, and per-joystick
// axis/button/hat readout. The real implementation (reading an OS joystick
// API) lives outside this repository's scope — spec.md names it an external
// collaborator — so this interface is the seam the core depends on.
type JoystickSource interface {
	Count() int
	NumAxes(joystick int) int
	NumButtons(joystick int) int
	NumHats(joystick int) int
	Axis(joystick, axis int) float64
	Button(joystick, button int) bool
	Hat(joystick, hat int) int16
}

// StaticJoystickSet is an in-memory JoystickSource, useful for tests and for
// running the core without real joystick hardware attached.
type StaticJoystickSet []JoystickState

// JoystickState is one joystick's axis/button/hat snapshot.
type JoystickState struct {
	Axes    []float64
	Buttons []bool
	Hats    []int16
}

func (s StaticJoystickSet) Count() int { return len(s) }

func (s StaticJoystickSet) NumAxes(joystick int) int {
	if joystick < 0 || joystick >= len(s) {
		return 0
	}
	return len(s[joystick].Axes)
}

func (s StaticJoystickSet) NumButtons(joystick int) int {
	if joystick < 0 || joystick >= len(s) {
		return 0
	}
	return len(s[joystick].Buttons)
}

func (s StaticJoystickSet) NumHats(joystick int) int {
	if joystick < 0 || joystick >= len(s) {
		return 0
	}
	return len(s[joystick].Hats)
}

func (s StaticJoystickSet) Axis(joystick, axis int) float64 {
	if joystick < 0 || joystick >= len(s) {
		return 0
	}
	j := s[joystick]
	if axis < 0 || axis >= len(j.Axes) {
		return 0
	}
	return j.Axes[axis]
}

func (s StaticJoystickSet) Button(joystick, button int) bool {
	if joystick < 0 || joystick >= len(s) {
		return false
	}
	j := s[joystick]
	if button < 0 || button >= len(j.Buttons) {
		return false
	}
	return j.Buttons[button]
}

func (s StaticJoystickSet) Hat(joystick, hat int) int16 {
	if joystick < 0 || joystick >= len(s) {
		return 0
	}
	j := s[joystick]
	if hat < 0 || hat >= len(j.Hats) {
		return 0
	}
	return j.Hats[hat]
}
