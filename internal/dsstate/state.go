// Package dsstate is the configuration facade the protocol core reads from
// and writes to: a per-instance set of scalar fields describing the live
// driver-station state (team number, alliance, position, control mode,
// enable/e-stop, comms flags, voltage, robot telemetry).
//
// Every field is an independent atomic cell. Readers and writers serialize
// per field; cross-field consistency is not guaranteed or required, matching
// spec.md §5's "atomicity is per-field" contract.
package dsstate

import (
	"sync/atomic"

	"github.com/ridgeline-robotics/dsproto/internal/wire"
)

// State is a thread-safe store of the live driver-station configuration.
// A State is owned by one driver-station process and shared by pointer
// between the scheduler, the parsers, and any admin surface — it is never a
// hidden package-level global.
type State struct {
	teamNumber atomic.Uint32 // stored as uint32, valid range is uint16
	alliance   atomic.Int32
	position   atomic.Int32
	mode       atomic.Int32
	enabled    atomic.Bool
	eStopped   atomic.Bool

	fmsComms   atomic.Bool
	radioComms atomic.Bool
	robotComms atomic.Bool

	robotVoltage  atomic.Uint64 // bits of a float64, via math.Float64bits
	robotHasCode  atomic.Bool
	cpuUsage      atomic.Uint32
	ramUsage      atomic.Uint32
	diskUsage     atomic.Uint32
	canUsage      atomic.Uint32

	joysticks atomic.Pointer[JoystickSource]
}

// New returns a State with the defaults spec.md implies: teleoperated,
// disabled, red 1, zero comms, zero voltage.
func New() *State {
	s := &State{}
	s.alliance.Store(int32(wire.AllianceRed))
	s.position.Store(int32(wire.Position1))
	s.mode.Store(int32(wire.ControlTeleoperated))
	var empty JoystickSource = StaticJoystickSet{}
	s.joysticks.Store(&empty)
	return s
}

func (s *State) TeamNumber() uint16        { return uint16(s.teamNumber.Load()) }
func (s *State) SetTeamNumber(team uint16) { s.teamNumber.Store(uint32(team)) }

func (s *State) Alliance() wire.Alliance          { return wire.Alliance(s.alliance.Load()) }
func (s *State) SetAlliance(a wire.Alliance)      { s.alliance.Store(int32(a)) }

func (s *State) Position() wire.Position     { return wire.Position(s.position.Load()) }
func (s *State) SetPosition(p wire.Position) { s.position.Store(int32(p)) }

func (s *State) ControlMode() wire.ControlMode     { return wire.ControlMode(s.mode.Load()) }
func (s *State) SetControlMode(m wire.ControlMode) { s.mode.Store(int32(m)) }

func (s *State) Enabled() bool     { return s.enabled.Load() }
func (s *State) SetEnabled(v bool) { s.enabled.Store(v) }

func (s *State) EStopped() bool     { return s.eStopped.Load() }
func (s *State) SetEStopped(v bool) { s.eStopped.Store(v) }

func (s *State) FMSComms() bool     { return s.fmsComms.Load() }
func (s *State) SetFMSComms(v bool) { s.fmsComms.Store(v) }

func (s *State) RadioComms() bool     { return s.radioComms.Load() }
func (s *State) SetRadioComms(v bool) { s.radioComms.Store(v) }

func (s *State) RobotComms() bool     { return s.robotComms.Load() }
func (s *State) SetRobotComms(v bool) { s.robotComms.Store(v) }

func (s *State) RobotHasCode() bool     { return s.robotHasCode.Load() }
func (s *State) SetRobotHasCode(v bool) { s.robotHasCode.Store(v) }

func (s *State) RobotVoltage() float64 {
	return float64frombits(s.robotVoltage.Load())
}

func (s *State) SetRobotVoltage(v float64) {
	s.robotVoltage.Store(float64bits(v))
}

func (s *State) CPUUsage() uint8      { return uint8(s.cpuUsage.Load()) }
func (s *State) SetCPUUsage(v uint8)  { s.cpuUsage.Store(uint32(clampPercent(v))) }
func (s *State) RAMUsage() uint8      { return uint8(s.ramUsage.Load()) }
func (s *State) SetRAMUsage(v uint8)  { s.ramUsage.Store(uint32(clampPercent(v))) }
func (s *State) DiskUsage() uint8     { return uint8(s.diskUsage.Load()) }
func (s *State) SetDiskUsage(v uint8) { s.diskUsage.Store(uint32(clampPercent(v))) }
func (s *State) CANUsage() uint8      { return uint8(s.canUsage.Load()) }
func (s *State) SetCANUsage(v uint8)  { s.canUsage.Store(uint32(clampPercent(v))) }

// Joysticks returns the currently attached joystick enumeration source.
func (s *State) Joysticks() JoystickSource {
	p := s.joysticks.Load()
	if p == nil {
		return StaticJoystickSet{}
	}
	return *p
}

// SetJoysticks swaps the joystick enumeration source, e.g. to plug in a
// real hardware-backed implementation in place of the default empty one.
func (s *State) SetJoysticks(src JoystickSource) {
	s.joysticks.Store(&src)
}

func clampPercent(v uint8) uint8 {
	if v > 100 {
		return 100
	}
	return v
}
