package history

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scan-history/internal/adapter"
	"github.com/MKhiriev/scan-history/internal/device"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

// Synchronizer owns the live query and turns its snapshots into [ListState]
// values.
type Synchronizer struct {
	client adapter.QueryClient
	exec   Executor
	list   *list

	remote        adapter.QueryHandle
	ownerDeviceID string

	// onDiscard runs whenever the generation changes.
	onDiscard func()

	logger *logger.Logger
}

func newSynchronizer(client adapter.QueryClient, exec Executor, l *list, log *logger.Logger) *Synchronizer {
	return &Synchronizer{
		client:    client,
		exec:      exec,
		list:      l,
		onDiscard: func() {},
		logger:    log,
	}
}

// Start subscribes to the scans of ownerDeviceID, replacing any previous
// subscription. An empty id is treated as [device.UnknownDevice].
//
// If the query client refuses the query the returned error wraps
// [ErrSubscription] and the synchronizer stays inactive.
func (s *Synchronizer) Start(ctx context.Context, ownerDeviceID string) (SubscriptionHandle, error) {
	s.teardown()

	ownerDeviceID = device.Normalize(ownerDeviceID)
	generation := s.list.generation
	log := s.logger.WithDevice(ownerDeviceID)

	remote, err := s.client.Subscribe(ctx,
		adapter.ScanFilter{OwnerDeviceID: ownerDeviceID},
		s.snapshotCallback(generation),
		s.errorCallback(generation),
	)
	if err != nil {
		log.Error().Err(err).Msg("scan history subscription rejected")
		return SubscriptionHandle{}, fmt.Errorf("%w: %w", ErrSubscription, err)
	}

	s.remote = remote
	s.ownerDeviceID = ownerDeviceID
	s.list.state = ListState{SubscriptionActive: true, Revision: s.list.state.Revision}

	log.Info().Uint64("generation", generation).Msg("scan history subscription started")
	return SubscriptionHandle{generation: generation}, nil
}

// Stop cancels the subscription identified by handle and discards the list.
// Stale handles and repeated calls are ignored.
func (s *Synchronizer) Stop(handle SubscriptionHandle) {
	if handle.IsZero() || handle.generation != s.list.generation {
		s.logger.Debug().Uint64("generation", handle.generation).Msg("stop with stale handle ignored")
		return
	}

	s.teardown()
	s.logger.Info().Msg("scan history subscription stopped")
}

// Active reports whether a live query is running.
func (s *Synchronizer) Active() bool {
	return s.list.state.SubscriptionActive
}

// teardown releases the remote query, if any, and starts a new generation so
// that callbacks of the old one are ignored.
func (s *Synchronizer) teardown() {
	if s.remote != "" {
		s.client.Unsubscribe(s.remote)
		s.remote = ""
	}
	s.ownerDeviceID = ""
	s.list.discard()
	s.onDiscard()
}

func (s *Synchronizer) snapshotCallback(generation uint64) adapter.SnapshotFunc {
	return func(snapshot models.ScanSnapshot) {
		s.exec.Post(func() {
			s.applySnapshot(generation, snapshot)
		})
	}
}

func (s *Synchronizer) errorCallback(generation uint64) adapter.ErrorFunc {
	return func(err error) {
		s.exec.Post(func() {
			s.applyError(generation, err)
		})
	}
}

func (s *Synchronizer) applySnapshot(generation uint64, snapshot models.ScanSnapshot) {
	if generation != s.list.generation || !s.list.state.SubscriptionActive {
		s.logger.Debug().Uint64("generation", generation).Msg("late snapshot dropped")
		return
	}

	records := normalize(snapshot.Records, s.ownerDeviceID)
	if dropped := len(snapshot.Records) - len(records); dropped > 0 {
		s.logger.Debug().Int("dropped", dropped).Msg("foreign or duplicate records dropped from snapshot")
	}

	state := s.list.applySnapshot(records)
	s.list.publish(ListChanged{State: state})
}

func (s *Synchronizer) applyError(generation uint64, err error) {
	if generation != s.list.generation || !s.list.state.SubscriptionActive {
		s.logger.Debug().Err(err).Msg("late query error dropped")
		return
	}

	mapped := mapQueryError(err)
	log := s.logger.WithDevice(s.ownerDeviceID)

	if isSubscriptionError(mapped) {
		log.Error().Err(err).Msg("scan history subscription revoked")
		s.client.Unsubscribe(s.remote)
		s.remote = ""
		s.list.state = ListState{
			Records:  s.list.state.Records,
			Revision: s.list.state.Revision,
		}
	} else {
		log.Warn().Err(err).Msg("scan history delivery interrupted")
	}

	s.list.publish(ListChanged{State: s.list.state, Err: mapped})
}
