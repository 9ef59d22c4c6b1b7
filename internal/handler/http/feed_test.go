package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scan-history/models"
)

func dialFeed(t *testing.T, th *testHandler, deviceFilter string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	srv := httptest.NewServer(th.Init())
	t.Cleanup(srv.Close)

	target := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/scans/subscribe?" +
		url.Values{"device_id": {deviceFilter}}.Encode()
	header := http.Header{}
	header.Set("Authorization", "Bearer "+testToken)

	conn, resp, err := websocket.DefaultDialer.Dial(target, header)
	if conn != nil {
		t.Cleanup(func() { _ = conn.Close() })
	}
	return conn, resp, err
}

func readFrame(t *testing.T, conn *websocket.Conn) models.FeedMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.FeedMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestSubscribe_PushesSnapshotOnConnectAndOnChange(t *testing.T) {
	th := newTestHandler(t)
	changes := make(chan struct{}, 1)

	first := models.ScanSnapshot{DeviceID: testDevice, Records: []models.ScanRecord{{ID: "a", OwnerDeviceID: testDevice}}, ReadAt: 1}
	second := models.ScanSnapshot{DeviceID: testDevice, Records: []models.ScanRecord{}, ReadAt: 2}

	th.feed.EXPECT().Watch(gomock.Any(), testDevice).Return(changes)
	gomock.InOrder(
		th.feed.EXPECT().Snapshot(gomock.Any(), testDevice).Return(first, nil),
		th.feed.EXPECT().Snapshot(gomock.Any(), testDevice).Return(second, nil),
	)

	conn, _, err := dialFeed(t, th, testDevice)
	require.NoError(t, err)

	msg := readFrame(t, conn)
	require.Equal(t, models.FeedSnapshot, msg.Type)
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, first, *msg.Snapshot)

	changes <- struct{}{}

	msg = readFrame(t, conn)
	require.Equal(t, models.FeedSnapshot, msg.Type)
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, int64(2), msg.Snapshot.ReadAt)
	assert.Empty(t, msg.Snapshot.Records)
}

func TestSubscribe_QueryFailureSendsErrorFrame(t *testing.T) {
	th := newTestHandler(t)
	th.feed.EXPECT().Watch(gomock.Any(), testDevice).Return(make(chan struct{}))
	th.feed.EXPECT().Snapshot(gomock.Any(), testDevice).Return(models.ScanSnapshot{}, errors.New("db down"))

	conn, _, err := dialFeed(t, th, testDevice)
	require.NoError(t, err)

	msg := readFrame(t, conn)
	assert.Equal(t, models.FeedError, msg.Type)
	assert.Equal(t, models.FeedCodeInternal, msg.Code)
	assert.NotContains(t, msg.Error, "db down")

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseInternalServerErr))
}

func TestSubscribe_HandshakeRejections(t *testing.T) {
	tests := []struct {
		name       string
		device     string
		wantStatus int
	}{
		{name: "foreign device", device: "device-2", wantStatus: http.StatusForbidden},
		{name: "missing filter", device: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)

			conn, resp, err := dialFeed(t, th, tt.device)

			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			assert.Nil(t, conn)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSubscribe_PingsIdleClients(t *testing.T) {
	th := newTestHandler(t)
	th.pingPeriod = 20 * time.Millisecond
	th.feed.EXPECT().Watch(gomock.Any(), testDevice).Return(make(chan struct{}))
	th.feed.EXPECT().Snapshot(gomock.Any(), testDevice).Return(models.ScanSnapshot{DeviceID: testDevice}, nil)

	conn, _, err := dialFeed(t, th, testDevice)
	require.NoError(t, err)

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})

	_ = readFrame(t, conn)

	// pings are only dispatched while reading
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("no ping received")
	}
}

func TestSubscribe_CloseStreamsEndsFeed(t *testing.T) {
	th := newTestHandler(t)
	th.feed.EXPECT().Watch(gomock.Any(), testDevice).Return(make(chan struct{}))
	th.feed.EXPECT().Snapshot(gomock.Any(), testDevice).Return(models.ScanSnapshot{DeviceID: testDevice}, nil)

	conn, _, err := dialFeed(t, th, testDevice)
	require.NoError(t, err)
	_ = readFrame(t, conn)

	th.CloseStreams()
	th.CloseStreams()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
