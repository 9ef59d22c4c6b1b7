package history

import (
	"context"

	"github.com/MKhiriev/scan-history/internal/adapter"
	"github.com/MKhiriev/scan-history/internal/logger"
)

// Coordinator performs optimistic deletes against the shared list.
//
// Per id: Present -> PendingDelete -> Deleted, or back to Present when the
// server refuses and no newer snapshot has been applied.
type Coordinator struct {
	client adapter.QueryClient
	exec   Executor
	list   *list

	pending map[string]PendingDeletion

	// inFlight holds the ids with a remote delete still running. Unlike
	// pending it survives restarts: only the completion clears an id.
	inFlight map[string]struct{}

	// spawn runs the remote call off the executor.
	spawn func(fn func())

	logger *logger.Logger
}

func newCoordinator(client adapter.QueryClient, exec Executor, l *list, log *logger.Logger) *Coordinator {
	return &Coordinator{
		client:   client,
		exec:     exec,
		list:     l,
		pending:  make(map[string]PendingDeletion),
		inFlight: make(map[string]struct{}),
		spawn:    func(fn func()) { go fn() },
		logger:   log,
	}
}

// RequestDelete removes id from the list at once and deletes it remotely in
// the background. The outcome arrives as a [ListChanged] event only if the
// record has to be restored.
func (c *Coordinator) RequestDelete(ctx context.Context, id string) error {
	if _, ok := c.inFlight[id]; ok {
		return ErrAlreadyPending
	}

	idx := c.list.state.IndexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	pending := PendingDeletion{
		ID:         id,
		RemovedAt:  c.list.state.Revision,
		Record:     c.list.state.Records[idx],
		Generation: c.list.generation,
	}
	c.pending[id] = pending
	c.inFlight[id] = struct{}{}

	state := c.list.mutate(without(c.list.state.Records, idx))
	c.list.publish(ListChanged{State: state})

	c.logger.Debug().Str("scan_id", id).Int64("removed_at", pending.RemovedAt).Msg("scan removed optimistically")

	c.spawn(func() {
		err := c.client.DeleteDocument(ctx, id)
		c.exec.Post(func() {
			c.complete(pending, err)
		})
	})

	return nil
}

// Pending returns the number of deletes in flight.
func (c *Coordinator) Pending() int {
	return len(c.inFlight)
}

// IsPending reports whether a delete of id is in flight.
func (c *Coordinator) IsPending(id string) bool {
	_, ok := c.inFlight[id]
	return ok
}

// reset forgets the optimistic removals of the old subscription. Their remote
// calls keep id in inFlight until they complete, but cannot touch the list.
func (c *Coordinator) reset() {
	if len(c.pending) > 0 {
		c.logger.Debug().Int("pending", len(c.pending)).Msg("in-flight deletes abandoned")
	}
	c.pending = make(map[string]PendingDeletion)
}

func (c *Coordinator) complete(p PendingDeletion, err error) {
	delete(c.inFlight, p.ID)

	current, ok := c.pending[p.ID]
	if !ok || current.RemovedAt != p.RemovedAt || p.Generation != c.list.generation {
		c.logger.Debug().Str("scan_id", p.ID).Msg("stale delete completion dropped")
		return
	}
	delete(c.pending, p.ID)

	log := c.logger.With().Str("scan_id", p.ID).Logger()

	if deleteSucceeded(err) {
		log.Info().Msg("scan deleted")
		return
	}

	if c.list.lastSnapshotRevision > p.RemovedAt {
		log.Warn().Err(err).Msg("scan delete failed after a newer snapshot, keeping snapshot")
		return
	}

	log.Warn().Err(err).Msg("scan delete failed, restoring")

	records := c.list.state.Records
	if c.list.state.IndexOf(p.ID) < 0 {
		records = insertOrdered(records, p.Record)
	}
	state := c.list.mutate(records)
	c.list.publish(ListChanged{
		State:        state,
		DeleteFailed: &DeleteFailed{ID: p.ID, Reason: err},
	})
}
