package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scan-history/internal/logger"
)

func waitWake(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case _, ok := <-ch:
		require.True(t, ok, "channel closed")
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}
}

func assertNoWake(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected notification")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestMemoryNotifier_PublishWakesDeviceSubscribers(t *testing.T) {
	n := NewMemoryNotifier(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mine := n.Subscribe(ctx, "device-1")
	mineToo := n.Subscribe(ctx, "device-1")
	other := n.Subscribe(ctx, "device-2")

	require.NoError(t, n.Publish(ctx, "device-1"))

	waitWake(t, mine)
	waitWake(t, mineToo)
	assertNoWake(t, other)
}

func TestMemoryNotifier_CoalescesWakeUps(t *testing.T) {
	n := NewMemoryNotifier(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := n.Subscribe(ctx, "device-1")
	for range 5 {
		require.NoError(t, n.Publish(ctx, "device-1"))
	}

	waitWake(t, ch)
	assertNoWake(t, ch)
}

func TestMemoryNotifier_CancelClosesChannel(t *testing.T) {
	n := NewMemoryNotifier(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	ch := n.Subscribe(ctx, "device-1")
	assert.Equal(t, 1, n.Subscribers("device-1"))

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
	assert.Eventually(t, func() bool { return n.Subscribers("device-1") == 0 }, time.Second, 5*time.Millisecond)

	// publishing after unsubscribe must not panic
	require.NoError(t, n.Publish(context.Background(), "device-1"))
}

func TestRedisNotifier_HandleRelaysToLocalSubscribers(t *testing.T) {
	n := NewRedisNotifier(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "scan_history.changes", logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := n.Subscribe(ctx, "device-1")

	n.handle(&redis.Message{Channel: "scan_history.changes", Payload: "device-2"})
	assertNoWake(t, ch)

	n.handle(&redis.Message{Channel: "scan_history.changes", Payload: ""})
	assertNoWake(t, ch)

	n.handle(&redis.Message{Channel: "scan_history.changes", Payload: "device-1"})
	waitWake(t, ch)
}

func TestRedisNotifier_RunStopsWithContext(t *testing.T) {
	n := NewRedisNotifier(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}), "scan_history.changes", logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, n.Run(ctx))
}
