package frcproto

import (
	"testing"

	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
)

func TestDispatchTelemetryTagCAN(t *testing.T) {
	s := dsstate.New()
	data := make([]byte, 11)
	data[1] = telemetryTagCAN
	data[10] = 42

	DispatchTelemetryTag(data, 0, s)
	if s.CANUsage() != 42 {
		t.Errorf("can usage = %d, want 42", s.CANUsage())
	}
}

func TestDispatchTelemetryTagRAM(t *testing.T) {
	s := dsstate.New()
	data := make([]byte, 5)
	data[1] = telemetryTagRAM
	data[4] = 77

	DispatchTelemetryTag(data, 0, s)
	if s.RAMUsage() != 77 {
		t.Errorf("ram usage = %d, want 77", s.RAMUsage())
	}
}

func TestDispatchTelemetryTagDisk(t *testing.T) {
	s := dsstate.New()
	data := make([]byte, 5)
	data[1] = telemetryTagDisk
	data[4] = 13

	DispatchTelemetryTag(data, 0, s)
	if s.DiskUsage() != 13 {
		t.Errorf("disk usage = %d, want 13", s.DiskUsage())
	}
}

func TestDispatchTelemetryTagUnknownIgnored(t *testing.T) {
	s := dsstate.New()
	s.SetCPUUsage(5)
	data := []byte{0, 0xFF, 0, 0, 0}
	DispatchTelemetryTag(data, 0, s)
	if s.CPUUsage() != 5 {
		t.Errorf("cpu usage mutated by unknown tag: got %d", s.CPUUsage())
	}
}

func TestDispatchTelemetryTagOutOfRangeNeverPanics(t *testing.T) {
	s := dsstate.New()
	DispatchTelemetryTag([]byte{}, 0, s)
	DispatchTelemetryTag([]byte{telemetryTagCPU}, 0, s)
	DispatchTelemetryTag([]byte{0, telemetryTagCPU}, 0, s)
}
