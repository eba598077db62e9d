package transport

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ridgeline-robotics/dsproto/internal/dsprotocol"
	"github.com/ridgeline-robotics/dsproto/internal/observability"
)

// Scheduler drives periodic packet emission, one goroutine per peer, at
// the cadences dsprotocol.Descriptor.Cadences() declares — the external
// "timer thread" spec.md §5 assigns this responsibility to, outside the
// protocol core.
type Scheduler struct {
	descriptor *dsprotocol.Descriptor
	conns      map[string]Sender

	wg      sync.WaitGroup
	stop    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewScheduler builds a Scheduler bound to descriptor, sending through
// conns (keyed by peer name: "fms", "robot"; "radio" is never scheduled,
// its cadence is always 0).
func NewScheduler(descriptor *dsprotocol.Descriptor, conns map[string]Sender) *Scheduler {
	return &Scheduler{descriptor: descriptor, conns: conns, stop: make(chan struct{})}
}

// Start launches one emission goroutine per peer whose cadence is
// nonzero and whose connection is present.
func (s *Scheduler) Start() {
	cadences := s.descriptor.Cadences()
	s.startPeer("fms", cadences.FMS, s.descriptor.BuildFMSPacket)
	s.startPeer("robot", cadences.Robot, s.descriptor.BuildRobotPacket)
}

func (s *Scheduler) startPeer(peer string, cadence time.Duration, build func() []byte) {
	if cadence <= 0 {
		return
	}
	conn, ok := s.conns[peer]
	if !ok || conn == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(cadence)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				packet := build()
				if err := conn.Send(packet); err != nil {
					log.Warn().Str("peer", peer).Err(err).Msg("failed to send outbound packet")
					continue
				}
				observability.RecordPacketSent(peer)
				log.Debug().Str("peer", peer).Int("bytes", len(packet)).Msg("packet emitted")
			}
		}
	}()
}

// Stop halts every emission goroutine and waits for them to exit. Safe
// to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stop)
	s.wg.Wait()
}
