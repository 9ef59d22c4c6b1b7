package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scan-history/internal/adapter"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/mock"
	"github.com/MKhiriev/scan-history/models"
)

const testDevice = "device-1"

// manualExecutor queues posted functions until the test drains them.
type manualExecutor struct {
	queue []func()
}

func (e *manualExecutor) Post(fn func()) {
	e.queue = append(e.queue, fn)
}

func (e *manualExecutor) drain() {
	for len(e.queue) > 0 {
		fn := e.queue[0]
		e.queue = e.queue[1:]
		fn()
	}
}

type harness struct {
	client *mock.MockQueryClient
	exec   *manualExecutor
	c      *Controller
	events []ListChanged

	onSnapshot adapter.SnapshotFunc
	onError    adapter.ErrorFunc
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		client: mock.NewMockQueryClient(ctrl),
		exec:   &manualExecutor{},
	}
	h.c = NewController(h.client, h.exec, logger.Nop())
	h.c.deletes.spawn = func(fn func()) { fn() }
	h.c.OnListChanged(func(e ListChanged) { h.events = append(h.events, e) })
	return h
}

func (h *harness) expectSubscribe(handle adapter.QueryHandle, deviceID string) *gomock.Call {
	return h.client.EXPECT().
		Subscribe(gomock.Any(), adapter.ScanFilter{OwnerDeviceID: deviceID}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ adapter.ScanFilter, onSnapshot adapter.SnapshotFunc, onError adapter.ErrorFunc) (adapter.QueryHandle, error) {
			h.onSnapshot, h.onError = onSnapshot, onError
			return handle, nil
		})
}

func (h *harness) start(t *testing.T) SubscriptionHandle {
	t.Helper()
	h.expectSubscribe("q1", testDevice)

	handle, err := h.c.Start(context.Background(), testDevice)
	require.NoError(t, err)
	return handle
}

// push delivers a snapshot the way the query client does and runs the
// executor.
func (h *harness) push(records ...models.ScanRecord) {
	h.onSnapshot(models.ScanSnapshot{DeviceID: testDevice, Records: records})
	h.exec.drain()
}

func (h *harness) resetEvents() {
	h.events = nil
}

func rec(id string, capturedAt int64) models.ScanRecord {
	return models.ScanRecord{ID: id, OwnerDeviceID: testDevice, CapturedAtMillis: &capturedAt}
}

func undated(id string) models.ScanRecord {
	return models.ScanRecord{ID: id, OwnerDeviceID: testDevice}
}

func ids(records []models.ScanRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
