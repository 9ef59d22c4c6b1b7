package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scan-history/internal/logger"
)

func startDispatcher(t *testing.T) (*Dispatcher, context.CancelFunc) {
	t.Helper()

	d := NewDispatcher(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = d.Run(ctx) }()
	t.Cleanup(cancel)
	return d, cancel
}

func TestDispatcher_RunsInSubmissionOrder(t *testing.T) {
	d, _ := startDispatcher(t)

	var got []int
	for i := range 100 {
		d.Post(func() { got = append(got, i) })
	}
	require.NoError(t, d.Do(context.Background(), func() {}))

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestDispatcher_PostFromManyGoroutines(t *testing.T) {
	d, _ := startDispatcher(t)

	counter := 0
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				d.Post(func() { counter++ })
			}
		}()
	}
	wg.Wait()

	var final int
	require.NoError(t, d.Do(context.Background(), func() { final = counter }))
	assert.Equal(t, 1000, final)
}

func TestDispatcher_PostFromDispatchedFunction(t *testing.T) {
	d, _ := startDispatcher(t)

	var order []string
	inner := make(chan struct{})
	d.Post(func() {
		order = append(order, "outer")
		d.Post(func() {
			order = append(order, "inner")
			close(inner)
		})
	})

	select {
	case <-inner:
	case <-time.After(time.Second):
		t.Fatal("nested post never ran")
	}
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestDispatcher_PanicDoesNotStopLoop(t *testing.T) {
	d, _ := startDispatcher(t)

	d.Post(func() { panic("boom") })

	ran := false
	require.NoError(t, d.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestDispatcher_DoAfterStop(t *testing.T) {
	d, cancel := startDispatcher(t)
	cancel()
	<-d.Stopped()

	err := d.Do(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDispatcher_DoHonoursContext(t *testing.T) {
	d := NewDispatcher(logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Do(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatcher_PostAfterStopIsDropped(t *testing.T) {
	d, cancel := startDispatcher(t)
	cancel()
	<-d.Stopped()

	assert.NotPanics(t, func() { d.Post(func() { t.Error("must not run") }) })
	assert.NotPanics(t, func() { d.Post(nil) })
}
