// Package transport is the external collaborator spec.md §1 carves out of
// the protocol core: the UDP socket layer, the periodic-emission
// scheduler, and the silence watchdog. None of it is part of the core —
// internal/dsprotocol.Descriptor never imports this package — but a
// driver station needs all three wired around the core to actually talk
// to a robot.
package transport
