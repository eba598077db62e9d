package transport

import (
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ridgeline-robotics/dsproto/internal/observability"
)

// readPollInterval bounds how long a Receiver blocks in ReadFrom before
// it checks for Stop again.
const readPollInterval = 200 * time.Millisecond

// Parser is the shape of a Descriptor's inbound packet handler
// (ParseFMSPacket/ParseRobotPacket): it applies data to state and reports
// whether the packet was accepted.
type Parser func(data []byte) (bool, error)

// Receiver owns one peer's inbound read loop: it is the counterpart to
// Scheduler, living outside the protocol core. Every successfully parsed
// datagram sets the peer's comms flag, feeds its Watchdog, and records a
// received-packet metric; every rejected datagram records a parse
// failure instead.
type Receiver struct {
	peer     string
	conn     *PeerConn
	parse    Parser
	setComms func(bool)
	watchdog *Watchdog

	wg      sync.WaitGroup
	stop    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewReceiver builds a Receiver for peer, reading from conn and applying
// each datagram via parse. setComms stamps the peer's live comms flag
// (may be nil); watchdog is fed on every accepted datagram (may be nil).
func NewReceiver(peer string, conn *PeerConn, parse Parser, setComms func(bool), watchdog *Watchdog) *Receiver {
	return &Receiver{peer: peer, conn: conn, parse: parse, setComms: setComms, watchdog: watchdog, stop: make(chan struct{})}
}

// Start launches the read loop. A no-op if conn is disabled — the radio
// bridge never opens a receive socket, so there is nothing to poll.
func (r *Receiver) Start() {
	if r.conn == nil || r.conn.Disabled() {
		return
	}
	r.wg.Add(1)
	go r.loop()
}

func (r *Receiver) loop() {
	defer r.wg.Done()
	buf := make([]byte, 4096)
	for {
		select {
		case <-r.stop:
			return
		default:
		}

		_ = r.conn.SetReadDeadline(time.Now().Add(readPollInterval))
		n, _, err := r.conn.ReadFrom(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return
		}

		ok, err := r.parse(buf[:n])
		if err != nil || !ok {
			observability.RecordParseFailure(r.peer)
			log.Warn().Str("peer", r.peer).Err(err).Msg("inbound packet rejected")
			continue
		}

		observability.RecordPacketReceived(r.peer)
		if r.setComms != nil {
			r.setComms(true)
		}
		observability.SetCommsUp(r.peer, true)
		if r.watchdog != nil {
			r.watchdog.Feed()
		}
	}
}

// Stop halts the read loop and waits for it to exit. Safe to call more
// than once.
func (r *Receiver) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.stop)
	r.mu.Unlock()
	r.wg.Wait()
}
