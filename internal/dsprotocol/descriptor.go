package dsprotocol

import (
	"sync"

	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
	"github.com/ridgeline-robotics/dsproto/internal/frcproto"
)

// Descriptor is the value object spec.md §4.E describes: it binds the
// packet builders and parsers in internal/frcproto to one driver
// station's live state and its own packet counters and latches. It holds
// no sockets and starts no goroutines — internal/transport is the sole
// caller of its builder/parser/reset methods, on its own schedule.
type Descriptor struct {
	state   *dsstate.State
	runtime *Runtime
}

// New constructs a Descriptor bound to state. Construction is cheap and
// side-effect-free; callers that want the "build once, share" lifecycle
// spec.md §3 describes should hold the returned pointer themselves, or
// use Default.
func New(state *dsstate.State) *Descriptor {
	return &Descriptor{
		state:   state,
		runtime: NewRuntime(),
	}
}

var (
	defaultOnce       sync.Once
	defaultDescriptor *Descriptor
)

// Default returns a process-wide Descriptor, constructing it on first
// call with state. Every subsequent call must pass the same state
// pointer; a mismatched pointer is a programming error and panics, rather
// than silently returning a descriptor bound to the wrong state.
func Default(state *dsstate.State) *Descriptor {
	defaultOnce.Do(func() {
		defaultDescriptor = New(state)
	})
	if defaultDescriptor.state != state {
		panic("dsprotocol: Default called with a different *dsstate.State than its first call")
	}
	return defaultDescriptor
}

// State returns the state this descriptor reads and mutates.
func (d *Descriptor) State() *dsstate.State { return d.state }

// Runtime returns this descriptor's packet counters and latches.
func (d *Descriptor) Runtime() *Runtime { return d.runtime }

// Cadences returns the emission interval for each outbound peer.
func (d *Descriptor) Cadences() Cadences { return DefaultCadences() }

// JoystickCaps returns the joystick capability ceilings the robot
// builder clamps to.
func (d *Descriptor) JoystickCaps() JoystickCaps { return DefaultJoystickCaps() }

// Sockets returns the four UDP socket specs this protocol year defines.
func (d *Descriptor) Sockets() [4]SocketSpec { return Sockets() }

// RadioAddress and RobotAddress derive their peer's address from the
// descriptor's team number; FMSAddress is always the empty string.
func (d *Descriptor) FMSAddress() string   { return FMSAddress() }
func (d *Descriptor) RadioAddress() string { return RadioAddress(d.state.TeamNumber()) }
func (d *Descriptor) RobotAddress() string { return RobotAddress(d.state.TeamNumber()) }

// BuildFMSPacket builds the next outbound FMS datagram and advances the
// FMS packet counter.
func (d *Descriptor) BuildFMSPacket() []byte {
	counter := d.runtime.nextFMSCounter()
	return frcproto.BuildFMSPacket(d.state, counter)
}

// BuildRobotPacket builds the next outbound robot datagram — header plus
// whichever of timezone/joystick/empty payload is due — and advances the
// robot packet counter.
func (d *Descriptor) BuildRobotPacket() []byte {
	requestCode := frcproto.RobotRequestCode(
		d.state.RobotComms(),
		d.runtime.RebootLatch(),
		d.runtime.RestartCodeLatch(),
	)
	counter := d.runtime.nextRobotCounter()
	sendTimeData := d.runtime.SendTimeDataLatch()
	return frcproto.BuildRobotPacket(d.state, counter, requestCode, sendTimeData)
}

// BuildRadioPacket always returns an empty datagram; the radio socket is
// disabled for this protocol year.
func (d *Descriptor) BuildRadioPacket() []byte {
	return frcproto.BuildRadioPacket()
}

// ParseFMSPacket applies an inbound FMS datagram to state. It does not
// touch the robot latches — only the robot watchdog resets those.
func (d *Descriptor) ParseFMSPacket(data []byte) (bool, error) {
	return frcproto.ParseFMSPacket(data, d.state)
}

// ParseRobotPacket applies an inbound robot datagram to state and
// updates the send-time-data latch from the robot's request byte.
func (d *Descriptor) ParseRobotPacket(data []byte) (bool, error) {
	result, err := frcproto.ParseRobotPacket(data, d.state)
	if err != nil {
		return false, err
	}
	d.runtime.setSendTimeDataLatch(result.SendTimeData)
	return result.OK, nil
}

// ParseRadioPacket always reports failure: the DS does not interact with
// the radio bridge directly.
func (d *Descriptor) ParseRadioPacket(data []byte) bool {
	return frcproto.ParseRadioPacket(data)
}

// ResetFMS is a no-op: the FMS peer has no latch state to clear. Marking
// FMS comms down on silence is left to the watchdog hook the host wires
// up (cmd/dsctl does it next to this call); this hook stays scoped to
// latch state, like ResetRobot.
func (d *Descriptor) ResetFMS() {}

// ResetRadio is a no-op: the radio peer has no latch state to clear.
func (d *Descriptor) ResetRadio() {}

// ResetRobot clears all three robot latches. It is the watchdog-expiry
// hook for robot silence.
func (d *Descriptor) ResetRobot() {
	d.runtime.resetRobot()
}

// RebootRobot sets the reboot latch; while robot comms are up, outbound
// robot packets carry request code 0x08 until ResetRobot clears it.
func (d *Descriptor) RebootRobot() {
	d.runtime.requestReboot()
}

// RestartRobotCode sets the restart-code latch; while robot comms are up,
// outbound robot packets carry request code 0x04 until ResetRobot clears
// it, unless a reboot is also pending.
func (d *Descriptor) RestartRobotCode() {
	d.runtime.requestRestartCode()
}
