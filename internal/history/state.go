package history

import (
	"github.com/MKhiriev/scan-history/models"
)

// ListState is an immutable view of the rendered history. Records is shared
// between values and must not be modified.
type ListState struct {
	Records            []models.ScanRecord
	SubscriptionActive bool

	// Revision grows by one for every applied snapshot and every optimistic
	// change. It never goes back, not even across subscriptions.
	Revision int64
}

// IndexOf returns the position of id in Records, or -1.
func (s ListState) IndexOf(id string) int {
	for i := range s.Records {
		if s.Records[i].ID == id {
			return i
		}
	}
	return -1
}

// ListChanged is emitted once per applied snapshot, once per optimistic
// change and once per delivery error.
type ListChanged struct {
	State ListState

	// Err is set when the event reports a query problem instead of new data:
	// [ErrTransientRead] (State unchanged) or [ErrSubscription] (State is
	// inactive).
	Err error

	// DeleteFailed is set when the event restores a record whose delete was
	// refused.
	DeleteFailed *DeleteFailed
}

// SubscriptionHandle is returned by Start and is the only way to Stop that
// subscription. The zero value never matches a live subscription.
type SubscriptionHandle struct {
	generation uint64
}

// IsZero reports whether h was never issued.
func (h SubscriptionHandle) IsZero() bool {
	return h.generation == 0
}

// PendingDeletion tracks one delete from the moment it is requested until
// the server answers.
type PendingDeletion struct {
	ID string

	// RemovedAt is the list revision at the time of the request. A snapshot
	// applied with a greater revision supersedes the optimistic removal.
	RemovedAt int64

	// Record is the removed record, kept for reinsertion.
	Record models.ScanRecord

	// Generation is the subscription the delete was issued under.
	Generation uint64
}

type listenerEntry struct {
	id int
	fn Listener
}

// list is the state shared by the synchronizer and the coordinator.
type list struct {
	state ListState

	// generation identifies the current subscription; it grows on every
	// Start and Stop.
	generation uint64

	// lastSnapshotRevision is the revision of the last applied snapshot.
	lastSnapshotRevision int64

	listeners      []listenerEntry
	nextListenerID int
}

func (l *list) addListener(fn Listener) (remove func()) {
	l.nextListenerID++
	id := l.nextListenerID
	l.listeners = append(l.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		for i, entry := range l.listeners {
			if entry.id == id {
				l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *list) publish(event ListChanged) {
	// listeners may unregister themselves while being notified
	listeners := l.listeners
	for _, entry := range listeners {
		entry.fn(event)
	}
}

// applySnapshot replaces the records with a snapshot result.
func (l *list) applySnapshot(records []models.ScanRecord) ListState {
	l.state = ListState{
		Records:            records,
		SubscriptionActive: true,
		Revision:           l.state.Revision + 1,
	}
	l.lastSnapshotRevision = l.state.Revision
	return l.state
}

// mutate replaces the records with an optimistic change.
func (l *list) mutate(records []models.ScanRecord) ListState {
	l.state = ListState{
		Records:            records,
		SubscriptionActive: l.state.SubscriptionActive,
		Revision:           l.state.Revision + 1,
	}
	return l.state
}

// discard drops the records and moves to a new generation. The revision is
// kept so that it stays monotonic.
func (l *list) discard() {
	l.generation++
	l.state = ListState{Revision: l.state.Revision}
}
