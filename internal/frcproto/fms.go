// Package frcproto implements the FRC 2015 packet builders and parsers:
// components C and D of the protocol core. Builders read the live
// configuration facade (internal/dsstate) through the wire codec
// primitives (internal/wire) and return a ready-to-send datagram; parsers
// do the reverse.
package frcproto

import (
	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
	"github.com/ridgeline-robotics/dsproto/internal/wire"
)

// FMS control code bits (spec.md §4.C).
const (
	fmsBitTest       uint8 = 0x01
	fmsBitAutonomous uint8 = 0x02
	fmsBitEnabled    uint8 = 0x04
	fmsBitRobotPing  uint8 = 0x08
	fmsBitRadioPing  uint8 = 0x10
	fmsBitRobotComms uint8 = 0x20
	fmsBitEStop      uint8 = 0x80
	dsVersionTag     uint8 = 0x00
)

// FMSControlCode composes the FMS outbound control byte from the live
// state. Exactly one mode bit is set (teleop contributes no bit).
func FMSControlCode(s *dsstate.State) uint8 {
	var code uint8
	switch s.ControlMode() {
	case wire.ControlTest:
		code |= fmsBitTest
	case wire.ControlAutonomous:
		code |= fmsBitAutonomous
	}
	if s.Enabled() {
		code |= fmsBitEnabled
	}
	if s.EStopped() {
		code |= fmsBitEStop
	}
	if s.RadioComms() {
		code |= fmsBitRadioPing
	}
	if s.RobotComms() {
		code |= fmsBitRobotPing
		code |= fmsBitRobotComms
	}
	return code
}

// BuildFMSPacket constructs the fixed 8-byte FMS outbound datagram. counter
// is the sent_fms_packets value to stamp into this packet; the caller
// (internal/dsprotocol) owns incrementing it afterward.
func BuildFMSPacket(s *dsstate.State, counter uint16) []byte {
	packet := make([]byte, 8)

	hi, lo := wire.EncodeU16BE(counter)
	packet[0] = hi
	packet[1] = lo

	packet[2] = dsVersionTag
	packet[3] = FMSControlCode(s)

	teamHi, teamLo := wire.EncodeU16BE(s.TeamNumber())
	packet[4] = teamHi
	packet[5] = teamLo

	vHi, vLo := wire.EncodeVoltage(s.RobotVoltage())
	packet[6] = vHi
	packet[7] = vLo

	return packet
}

// ParseFMSPacket reads an inbound FMS packet and applies enable/mode/
// alliance/position to s. It returns false without mutating state if the
// payload is shorter than 6 bytes.
func ParseFMSPacket(data []byte, s *dsstate.State) (bool, error) {
	if len(data) < 6 {
		return false, ErrFMSPacketTooShort
	}

	control := data[3]
	station := data[5]

	s.SetEnabled(control&fmsBitEnabled != 0)

	switch {
	case control&fmsBitAutonomous != 0:
		s.SetControlMode(wire.ControlAutonomous)
	case control&fmsBitTest != 0:
		s.SetControlMode(wire.ControlTest)
	default:
		s.SetControlMode(wire.ControlTeleoperated)
	}

	s.SetAlliance(wire.AllianceOf(station))
	s.SetPosition(wire.PositionOf(station))

	return true, nil
}
