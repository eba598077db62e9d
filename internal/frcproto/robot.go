package frcproto

import (
	"time"

	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
	"github.com/ridgeline-robotics/dsproto/internal/wire"
)

// Robot control code bits (spec.md §4.C).
const (
	robotBitTest       uint8 = 0x01
	robotBitAutonomous uint8 = 0x02
	robotBitEnabled    uint8 = 0x04
	robotBitFMSAttached uint8 = 0x08
	robotBitEStop      uint8 = 0x80

	generalTag uint8 = 0x01

	requestNormal      uint8 = 0x80
	requestReboot      uint8 = 0x08
	requestRestartCode uint8 = 0x04
	requestUnconnected uint8 = 0x00

	joystickTag uint8 = 0x0c
	dateTag     uint8 = 0x0f
	timezoneTag uint8 = 0x10
)

// RobotHeaderLen is the number of bytes that precede any variable payload
// in a robot outbound packet.
const RobotHeaderLen = 6

// robotPacketsBeforeJoystickData is the sent_robot_packets threshold above
// which the builder starts attaching joystick payloads (spec.md §4.C).
const robotPacketsBeforeJoystickData = 5

// RobotControlCode composes the robot outbound control byte.
func RobotControlCode(s *dsstate.State) uint8 {
	var code uint8
	switch s.ControlMode() {
	case wire.ControlTest:
		code |= robotBitTest
	case wire.ControlAutonomous:
		code |= robotBitAutonomous
	}
	if s.FMSComms() {
		code |= robotBitFMSAttached
	}
	if s.EStopped() {
		code |= robotBitEStop
	}
	if s.Enabled() {
		code |= robotBitEnabled
	}
	return code
}

// RobotRequestCode composes the robot outbound request byte from the live
// robot-comms flag and the reboot/restart-code latches (owned by
// internal/dsprotocol's Runtime, passed in explicitly here so this package
// stays free of a dependency on the descriptor/lifecycle component).
func RobotRequestCode(robotComms, rebootLatch, restartCodeLatch bool) uint8 {
	if !robotComms {
		return requestUnconnected
	}
	if rebootLatch {
		return requestReboot
	}
	if restartCodeLatch {
		return requestRestartCode
	}
	return requestNormal
}

// BuildRobotPacket constructs the robot outbound datagram: the mandatory
// 6-byte header, followed by exactly one of a timezone payload, a joystick
// payload, or nothing, per spec.md §4.C.
//
// counter is the sent_robot_packets value to stamp into this packet (and
// the value used to decide whether joystick data is due yet); requestCode
// should come from RobotRequestCode; sendTimeData is the
// send_time_data_latch value.
func BuildRobotPacket(s *dsstate.State, counter uint16, requestCode uint8, sendTimeData bool) []byte {
	var payload []byte
	switch {
	case sendTimeData:
		payload = buildTimezonePayload()
	case counter > robotPacketsBeforeJoystickData:
		payload = buildJoystickPayload(s.Joysticks())
	}

	packet := make([]byte, RobotHeaderLen+len(payload))

	hi, lo := wire.EncodeU16BE(counter)
	packet[0] = hi
	packet[1] = lo
	packet[2] = generalTag
	packet[3] = RobotControlCode(s)
	packet[4] = requestCode
	packet[5] = wire.StationByte(s.Alliance(), s.Position())

	copy(packet[RobotHeaderLen:], payload)
	return packet
}

// buildJoystickPayload concatenates the per-joystick blocks for every
// attached joystick, in enumeration order. Capability caps (spec.md §3) are
// enforced by clamping each count, rather than rejecting the joystick.
func buildJoystickPayload(js dsstate.JoystickSource) []byte {
	count := js.Count()
	if count > dsstate.MaxJoysticks {
		count = dsstate.MaxJoysticks
	}
	if count <= 0 {
		return nil
	}

	type dims struct {
		axes, buttons, hats int
	}
	sizes := make([]dims, count)
	total := 0
	for i := 0; i < count; i++ {
		axes := clampInt(js.NumAxes(i), dsstate.MaxAxes)
		buttons := clampInt(js.NumButtons(i), dsstate.MaxButtons)
		hats := clampInt(js.NumHats(i), dsstate.MaxHats)
		sizes[i] = dims{axes, buttons, hats}
		total += joystickBlockLen(axes, hats)
	}

	out := make([]byte, total)
	pos := 0
	for i := 0; i < count; i++ {
		d := sizes[i]
		blockLen := joystickBlockLen(d.axes, d.hats)

		out[pos+0] = uint8(blockLen - 1)
		out[pos+1] = joystickTag

		axesStart := pos + 2
		for a := 0; a < d.axes; a++ {
			out[axesStart+a] = uint8(wire.ClampAxis(js.Axis(i, a)))
		}

		buttonCountOffset := axesStart + d.axes
		out[buttonCountOffset] = uint8(d.buttons)

		var buttonBits uint16
		for b := 0; b < d.buttons; b++ {
			if js.Button(i, b) {
				buttonBits |= 1 << uint(b)
			}
		}
		bitsHi, bitsLo := wire.EncodeU16BE(buttonBits)
		out[buttonCountOffset+1] = bitsHi
		out[buttonCountOffset+2] = bitsLo

		hatCountOffset := buttonCountOffset + 3
		out[hatCountOffset] = uint8(d.hats)
		for h := 0; h < d.hats; h++ {
			hatHi, hatLo := wire.EncodeU16BE(uint16(js.Hat(i, h)))
			out[hatCountOffset+1+2*h] = hatHi
			out[hatCountOffset+2+2*h] = hatLo
		}

		pos += blockLen
	}
	return out
}

// joystickBlockLen is the total byte length of one joystick's block,
// per spec.md §3: 6 + axes + 2*hats (header tag + tag id + axes vector +
// button-count + 2-byte button bitfield + hat-count + hats).
func joystickBlockLen(axes, hats int) int {
	return 6 + axes + 2*hats
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// buildTimezonePayload constructs the wall-clock/timezone payload,
// per spec.md §4.C. Unlike the original source (which reads an
// uninitialized time_t before calling localtime), the clock is read exactly
// once, here, before any field is extracted from it.
func buildTimezonePayload() []byte {
	now := time.Now()
	zoneName, _ := now.Zone()
	if zoneName == "" {
		zoneName = "UTC"
	}
	tz := []byte(zoneName)

	out := make([]byte, 12+len(tz))
	out[0] = 0x0b
	out[1] = dateTag
	out[2] = 0
	out[3] = 0
	out[4] = uint8(now.Second())
	out[5] = uint8(now.Minute())
	out[6] = uint8(now.Hour())
	out[7] = uint8(now.YearDay() - 1) // 0..365
	out[8] = uint8(int(now.Month()) - 1)
	out[9] = uint8((now.Year() - 1900) % 256)
	out[10] = uint8(len(tz))
	out[11] = timezoneTag
	copy(out[12:], tz)
	return out
}

// ParseRobotResult is the outcome of parsing a robot inbound packet.
type ParseRobotResult struct {
	OK           bool
	SendTimeData bool
}

// ParseRobotPacket reads an inbound robot packet, applying robot-has-code,
// e-stop, voltage, and (when present) the extended telemetry block to s. It
// reports the value the send_time_data_latch should be set to; the caller
// (internal/dsprotocol) owns the latch itself.
func ParseRobotPacket(data []byte, s *dsstate.State) (ParseRobotResult, error) {
	if len(data) < 8 {
		return ParseRobotResult{}, ErrRobotPacketTooShort
	}

	control := data[3]
	status := data[4]
	request := data[7]

	s.SetRobotHasCode(status&0x20 != 0)
	s.SetEStopped(control&robotBitEStop != 0)
	s.SetRobotVoltage(wire.DecodeVoltage(data[5], data[6]))

	if len(data) > 9 {
		DispatchTelemetryTag(data, 8, s)
	}

	return ParseRobotResult{OK: true, SendTimeData: request == 0x01}, nil
}
