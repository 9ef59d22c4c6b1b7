package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/scan-history/internal/logger"
)

// MemoryNotifier fans change notifications out to subscribers of the same
// process.
type MemoryNotifier struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}

	logger *logger.Logger
}

// NewMemoryNotifier returns a notifier for single-instance deployments.
func NewMemoryNotifier(log *logger.Logger) *MemoryNotifier {
	return &MemoryNotifier{
		subs:   make(map[string]map[chan struct{}]struct{}),
		logger: log,
	}
}

// Publish wakes every subscriber of deviceID.
func (n *MemoryNotifier) Publish(_ context.Context, deviceID string) error {
	n.notify(deviceID)
	return nil
}

// Subscribe implements [ChangeNotifier].
func (n *MemoryNotifier) Subscribe(ctx context.Context, deviceID string) <-chan struct{} {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	if n.subs[deviceID] == nil {
		n.subs[deviceID] = make(map[chan struct{}]struct{})
	}
	n.subs[deviceID][ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()

		n.mu.Lock()
		delete(n.subs[deviceID], ch)
		if len(n.subs[deviceID]) == 0 {
			delete(n.subs, deviceID)
		}
		close(ch)
		n.mu.Unlock()
	}()

	return ch
}

// Subscribers returns the number of live subscriptions for deviceID.
func (n *MemoryNotifier) Subscribers(deviceID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs[deviceID])
}

func (n *MemoryNotifier) notify(deviceID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs[deviceID] {
		select {
		case ch <- struct{}{}:
		default:
			// a wake-up is already queued
		}
	}
}
