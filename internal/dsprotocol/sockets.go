package dsprotocol

import "time"

// SocketSpec names one peer's UDP socket pair, for internal/transport to
// bind. Ports are zero and Disabled is true for peers that never open a
// socket (the radio bridge, in this protocol year).
type SocketSpec struct {
	Peer       string
	InputPort  int
	OutputPort int
	Disabled   bool
}

// Sockets returns the four fixed socket specs for this protocol year,
// in FMS/Radio/Robot/NetConsole order.
func Sockets() [4]SocketSpec {
	return [4]SocketSpec{
		{Peer: "fms", InputPort: 1120, OutputPort: 1160, Disabled: false},
		{Peer: "radio", InputPort: 0, OutputPort: 0, Disabled: true},
		{Peer: "robot", InputPort: 1150, OutputPort: 1110, Disabled: false},
		{Peer: "netconsole", InputPort: 6666, OutputPort: 6668, Disabled: false},
	}
}

// Cadences holds the emission interval for each outbound peer. A zero
// interval means the peer is never scheduled (the radio bridge).
type Cadences struct {
	FMS   time.Duration
	Radio time.Duration
	Robot time.Duration
}

// DefaultCadences returns the fixed cadences for this protocol year.
func DefaultCadences() Cadences {
	return Cadences{
		FMS:   500 * time.Millisecond,
		Radio: 0,
		Robot: 20 * time.Millisecond,
	}
}

// JoystickCaps holds the per-joystick capability ceilings the payload
// encoder clamps to.
type JoystickCaps struct {
	MaxJoysticks int
	MaxAxes      int
	MaxHats      int
	MaxButtons   int
}

// DefaultJoystickCaps returns the fixed joystick capability ceilings for
// this protocol year: 6 joysticks, 6 axes, 1 hat, 10 buttons.
func DefaultJoystickCaps() JoystickCaps {
	return JoystickCaps{
		MaxJoysticks: 6,
		MaxAxes:      6,
		MaxHats:      1,
		MaxButtons:   10,
	}
}
