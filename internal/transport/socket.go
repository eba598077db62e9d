package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/ridgeline-robotics/dsproto/internal/dsprotocol"
)

// Sender is the minimal capability the scheduler needs from a peer
// connection. Satisfied by *PeerConn; kept as an interface so the
// scheduler can be tested without binding real sockets.
type Sender interface {
	Send(data []byte) error
}

// PeerConn is a bound UDP socket pair for one peer: a receive socket
// listening on spec.InputPort, and a send socket targeting peerAddr on
// spec.OutputPort. A disabled spec (the radio bridge, in this protocol
// year) yields a PeerConn whose Send/ReadFrom are no-ops.
type PeerConn struct {
	spec dsprotocol.SocketSpec
	recv *net.UDPConn
	send *net.UDPConn
}

// Dial opens the socket pair for spec. peerAddr is the host (no port) to
// send outbound datagrams to; it may be empty for peers (like FMS) whose
// address is only known once a datagram arrives from them.
func Dial(spec dsprotocol.SocketSpec, peerAddr string) (*PeerConn, error) {
	if spec.Disabled {
		return &PeerConn{spec: spec}, nil
	}

	recv, err := net.ListenUDP("udp", &net.UDPAddr{Port: spec.InputPort})
	if err != nil {
		return nil, fmt.Errorf("transport: listen %s on port %d: %w", spec.Peer, spec.InputPort, err)
	}

	conn := &PeerConn{spec: spec, recv: recv}
	if peerAddr == "" {
		return conn, nil
	}

	raddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", peerAddr, spec.OutputPort))
	if err != nil {
		recv.Close()
		return nil, fmt.Errorf("transport: resolve %s address %q: %w", spec.Peer, peerAddr, err)
	}
	send, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		recv.Close()
		return nil, fmt.Errorf("transport: dial %s at %s: %w", spec.Peer, raddr, err)
	}
	conn.send = send
	return conn, nil
}

// Send writes data to the peer's send socket. A no-op if the peer is
// disabled or was dialed without a peer address.
func (p *PeerConn) Send(data []byte) error {
	if p.send == nil {
		return nil
	}
	_, err := p.send.Write(data)
	return err
}

// ReadFrom reads one inbound datagram into buf, returning its length and
// the sender's address.
func (p *PeerConn) ReadFrom(buf []byte) (int, *net.UDPAddr, error) {
	if p.recv == nil {
		return 0, nil, net.ErrClosed
	}
	return p.recv.ReadFromUDP(buf)
}

// SetReadDeadline bounds the next ReadFrom call, so a Receiver's poll
// loop can check for Stop between reads instead of blocking forever. A
// no-op on a disabled peer.
func (p *PeerConn) SetReadDeadline(t time.Time) error {
	if p.recv == nil {
		return nil
	}
	return p.recv.SetReadDeadline(t)
}

// Disabled reports whether this peer never opened a receive socket (the
// radio bridge, in this protocol year).
func (p *PeerConn) Disabled() bool {
	return p.recv == nil
}

// Close releases both sockets. Safe to call on a disabled PeerConn.
func (p *PeerConn) Close() error {
	var firstErr error
	if p.send != nil {
		if err := p.send.Close(); err != nil {
			firstErr = err
		}
	}
	if p.recv != nil {
		if err := p.recv.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
