package transport

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ResetHook is called when a peer's watchdog grace window expires
// without a successful inbound parse. It clears the peer's latch state
// (dsprotocol.Descriptor.ResetFMS/ResetRadio/ResetRobot, in practice).
type ResetHook func()

// Watchdog fires its ResetHook when Feed has not been called within
// Grace of the last call (or of Start, if Feed was never called). This
// is the "watchdog thread" spec.md §5 assigns the reset-hook call to,
// outside the protocol core.
type Watchdog struct {
	Peer  string
	Grace time.Duration
	Hook  ResetHook

	mu       sync.Mutex
	lastSeen time.Time
	stop     chan struct{}
}

// NewWatchdog returns a Watchdog that fires hook after grace of silence.
func NewWatchdog(grace time.Duration, hook ResetHook) *Watchdog {
	return &Watchdog{Grace: grace, Hook: hook, lastSeen: time.Now()}
}

// NewPeerWatchdog is NewWatchdog with a peer name attached, for log
// context when the grace window expires.
func NewPeerWatchdog(peer string, grace time.Duration, hook ResetHook) *Watchdog {
	w := NewWatchdog(grace, hook)
	w.Peer = peer
	return w
}

// Feed records a successful inbound parse, postponing the next reset.
func (w *Watchdog) Feed() {
	w.mu.Lock()
	w.lastSeen = time.Now()
	w.mu.Unlock()
}

// Start runs the watchdog's poll loop until Stop is called. interval
// should be comfortably smaller than Grace so expiry is detected
// promptly. A call while the loop is already running is a no-op; after
// Stop, Start launches a new loop.
func (w *Watchdog) Start(interval time.Duration) {
	w.mu.Lock()
	if w.stop != nil {
		w.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	w.stop = stop
	w.lastSeen = time.Now()
	w.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				w.checkExpiry()
			}
		}
	}()
}

func (w *Watchdog) checkExpiry() {
	w.mu.Lock()
	expired := time.Since(w.lastSeen) > w.Grace
	if expired {
		w.lastSeen = time.Now()
	}
	w.mu.Unlock()

	if expired && w.Hook != nil {
		log.Warn().Str("peer", w.Peer).Dur("grace", w.Grace).Msg("watchdog expired, resetting peer latches")
		w.Hook()
	}
}

// Stop halts the poll loop. Safe to call more than once, and safe to
// call even if Start was never called.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop == nil {
		return
	}
	close(w.stop)
	w.stop = nil
}
