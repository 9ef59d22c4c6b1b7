package history

import (
	"context"
	"slices"

	"github.com/MKhiriev/scan-history/internal/adapter"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

// Controller is the history screen's view of the scan list. All methods must
// be called on exec.
type Controller struct {
	list    *list
	sync    *Synchronizer
	deletes *Coordinator
}

// NewController wires a synchronizer and a delete coordinator around one
// shared list.
func NewController(client adapter.QueryClient, exec Executor, log *logger.Logger) *Controller {
	l := &list{}
	log = log.GetChildLogger()

	c := &Controller{
		list:    l,
		sync:    newSynchronizer(client, exec, l, log),
		deletes: newCoordinator(client, exec, l, log),
	}
	c.sync.onDiscard = c.deletes.reset

	return c
}

// Start begins observing ownerDeviceID. See [Synchronizer.Start].
func (c *Controller) Start(ctx context.Context, ownerDeviceID string) (SubscriptionHandle, error) {
	return c.sync.Start(ctx, ownerDeviceID)
}

// Stop ends the subscription identified by handle. See [Synchronizer.Stop].
func (c *Controller) Stop(handle SubscriptionHandle) {
	c.sync.Stop(handle)
}

// RequestDelete deletes id optimistically. See [Coordinator.RequestDelete].
func (c *Controller) RequestDelete(ctx context.Context, id string) error {
	return c.deletes.RequestDelete(ctx, id)
}

// OnListChanged registers l and returns a function that unregisters it.
func (c *Controller) OnListChanged(l Listener) (remove func()) {
	return c.list.addListener(l)
}

// CurrentList returns a copy of the rendered records.
func (c *Controller) CurrentList() []models.ScanRecord {
	return slices.Clone(c.list.state.Records)
}

// State returns the current list state.
func (c *Controller) State() ListState {
	return c.list.state
}

// IsDeleting reports whether a delete of id is in flight.
func (c *Controller) IsDeleting(id string) bool {
	return c.deletes.IsPending(id)
}
