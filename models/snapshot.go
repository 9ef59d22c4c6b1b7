package models

// ScanSnapshot is a complete point-in-time result set of a live query. It is
// never a delta: a receiver replaces whatever it held before with Records.
type ScanSnapshot struct {
	// DeviceID is the owner filter the snapshot was produced for.
	DeviceID string `json:"device_id"`

	// Records is the full result set. The server sends it ordered by capture
	// time, but receivers must not rely on that.
	Records []ScanRecord `json:"records"`

	// ReadAt is the server read time in epoch milliseconds.
	ReadAt int64 `json:"read_at"`
}
