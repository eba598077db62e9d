package frcproto

import "errors"

// Sentinel errors for the malformed-inbound-packet case spec.md §7
// defines, one per parsed peer (FMS, robot). Unrecognized extended tags and out-of-range station bytes are
// deliberately not surfaced as errors — spec.md §7 calls for silently
// ignoring the former and falling back to a default for the latter.
var (
	ErrFMSPacketTooShort   = errors.New("frcproto: fms packet shorter than 6 bytes")
	ErrRobotPacketTooShort = errors.New("frcproto: robot packet shorter than 8 bytes")
)
