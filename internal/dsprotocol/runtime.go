package dsprotocol

import "sync/atomic"

// Runtime holds the protocol core's own mutable state: the per-peer sent
// packet counters and the one-shot latches that modify the next outbound
// robot packet. Unlike internal/dsstate, this is not configuration — it
// is derived, single-writer-per-field bookkeeping (spec.md §5), so plain
// atomics suffice and there is no facade interface around it.
type Runtime struct {
	sentFMSPackets   atomic.Uint32
	sentRobotPackets atomic.Uint32

	rebootLatch       atomic.Bool
	restartCodeLatch  atomic.Bool
	sendTimeDataLatch atomic.Bool
}

// NewRuntime returns a Runtime with both counters at zero and every latch
// clear.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// SentFMSPackets returns the current FMS counter value.
func (r *Runtime) SentFMSPackets() uint16 {
	return uint16(r.sentFMSPackets.Load())
}

// nextFMSCounter returns the counter value to stamp into the next FMS
// packet, then advances it (wrapping at 2^16, per spec.md §3).
func (r *Runtime) nextFMSCounter() uint16 {
	value := uint16(r.sentFMSPackets.Load())
	r.sentFMSPackets.Store(uint32(value + 1))
	return value
}

// SentRobotPackets returns the current robot counter value.
func (r *Runtime) SentRobotPackets() uint16 {
	return uint16(r.sentRobotPackets.Load())
}

func (r *Runtime) nextRobotCounter() uint16 {
	value := uint16(r.sentRobotPackets.Load())
	r.sentRobotPackets.Store(uint32(value + 1))
	return value
}

// RebootLatch reports whether a robot reboot has been requested and not
// yet cleared.
func (r *Runtime) RebootLatch() bool { return r.rebootLatch.Load() }

// RestartCodeLatch reports whether a robot code restart has been
// requested and not yet cleared.
func (r *Runtime) RestartCodeLatch() bool { return r.restartCodeLatch.Load() }

// SendTimeDataLatch reports whether the next robot packet should carry
// the timezone payload instead of joystick data.
func (r *Runtime) SendTimeDataLatch() bool { return r.sendTimeDataLatch.Load() }

// setSendTimeDataLatch is called by the parser: the robot sets this by
// replying with request byte 0x01.
func (r *Runtime) setSendTimeDataLatch(v bool) { r.sendTimeDataLatch.Store(v) }

// requestReboot sets the reboot latch.
func (r *Runtime) requestReboot() { r.rebootLatch.Store(true) }

// requestRestartCode sets the restart-code latch.
func (r *Runtime) requestRestartCode() { r.restartCodeLatch.Store(true) }

// resetRobot clears all three latches, per spec.md §3/§4.E: fired by the
// robot watchdog on silence.
func (r *Runtime) resetRobot() {
	r.rebootLatch.Store(false)
	r.restartCodeLatch.Store(false)
	r.sendTimeDataLatch.Store(false)
}
