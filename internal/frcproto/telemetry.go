package frcproto

import "github.com/ridgeline-robotics/dsproto/internal/dsstate"

// Extended robot telemetry tags (spec.md §4.D). Only one extended block is
// parsed per packet — there is no loop over multiple blocks, matching the
// original and the spec.
const (
	telemetryTagCAN  uint8 = 0x0e
	telemetryTagCPU  uint8 = 0x05
	telemetryTagRAM  uint8 = 0x06
	telemetryTagDisk uint8 = 0x04
)

// DispatchTelemetryTag reads the tag byte at data[offset+1] and, if it
// matches a known telemetry kind, applies the corresponding usage field to
// s. Unrecognized tags are silently ignored, per spec.md §7's error
// taxonomy — the header fields were already applied by the caller, and the
// watchdog is still fed.
func DispatchTelemetryTag(data []byte, offset int, s *dsstate.State) {
	if offset+1 >= len(data) {
		return
	}
	switch data[offset+1] {
	case telemetryTagCAN:
		if idx := offset + 10; idx < len(data) {
			s.SetCANUsage(data[idx])
		}
	case telemetryTagCPU:
		if idx := offset + 3; idx < len(data) {
			s.SetCPUUsage(data[idx])
		}
	case telemetryTagRAM:
		if idx := offset + 4; idx < len(data) {
			s.SetRAMUsage(data[idx])
		}
	case telemetryTagDisk:
		if idx := offset + 4; idx < len(data) {
			s.SetDiskUsage(data[idx])
		}
	}
}
