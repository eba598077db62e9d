// Package dsprotocol is the protocol descriptor and lifecycle component: it
// binds the packet builders and parsers in internal/frcproto to peer
// addresses, socket endpoints, emission cadences, joystick capabilities,
// and watchdog-reset hooks, and owns the per-peer counters and the
// reboot/restart-code/send-time-data latches those builders read.
package dsprotocol
