package frcproto

import (
	"bytes"
	"testing"

	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
	"github.com/ridgeline-robotics/dsproto/internal/wire"
)

func TestBuildFMSPacketAllZero(t *testing.T) {
	s := dsstate.New()
	got := BuildFMSPacket(s, 0)
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestBuildFMSPacketAutonomousEnabledAllComms(t *testing.T) {
	s := dsstate.New()
	s.SetTeamNumber(4499)
	s.SetControlMode(wire.ControlAutonomous)
	s.SetEnabled(true)
	s.SetFMSComms(true)
	s.SetRadioComms(true)
	s.SetRobotComms(true)
	s.SetRobotVoltage(12.50)

	got := BuildFMSPacket(s, 0)
	want := []byte{0x00, 0x00, 0x00, 0x3E, 0x11, 0x93, 0x0C, 0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestBuildFMSPacketLength(t *testing.T) {
	s := dsstate.New()
	got := BuildFMSPacket(s, 12345)
	if len(got) != 8 {
		t.Fatalf("fms packet length = %d, want 8", len(got))
	}
	if hi, lo := wire.EncodeU16BE(12345); got[0] != hi || got[1] != lo {
		t.Fatalf("counter bytes = % x, want % x", got[:2], []byte{hi, lo})
	}
}

func TestParseFMSPacketTooShort(t *testing.T) {
	s := dsstate.New()
	s.SetEnabled(true)
	ok, err := ParseFMSPacket([]byte{1, 2, 3, 4, 5}, s)
	if ok || err == nil {
		t.Fatalf("expected failure for short packet")
	}
	if !s.Enabled() {
		t.Fatalf("state must not be mutated on parse failure")
	}
}

func TestParseFMSPacketScenario(t *testing.T) {
	s := dsstate.New()
	data := []byte{0xFF, 0xFF, 0xFF, 0x06, 0xFF, 0x04}
	ok, err := ParseFMSPacket(data, s)
	if !ok || err != nil {
		t.Fatalf("parse failed: ok=%v err=%v", ok, err)
	}
	if !s.Enabled() {
		t.Errorf("expected enabled=true")
	}
	if s.ControlMode() != wire.ControlAutonomous {
		t.Errorf("mode = %v, want autonomous", s.ControlMode())
	}
	if s.Alliance() != wire.AllianceBlue {
		t.Errorf("alliance = %v, want blue", s.Alliance())
	}
	if s.Position() != wire.Position2 {
		t.Errorf("position = %v, want P2", s.Position())
	}
}

func TestParseFMSPacketPrefersTeleopWhenNoModeBit(t *testing.T) {
	s := dsstate.New()
	s.SetControlMode(wire.ControlTest)
	data := []byte{0, 0, 0, 0x00, 0, 0}
	ok, err := ParseFMSPacket(data, s)
	if !ok || err != nil {
		t.Fatalf("parse failed: ok=%v err=%v", ok, err)
	}
	if s.ControlMode() != wire.ControlTeleoperated {
		t.Errorf("mode = %v, want teleoperated fallback", s.ControlMode())
	}
}
