package models

// FeedMessageType discriminates the frames of the live scan feed.
type FeedMessageType string

const (
	// FeedSnapshot carries a complete result set in Snapshot.
	FeedSnapshot FeedMessageType = "snapshot"
	// FeedError reports a server-side failure of the query. The stream is
	// closed after a FeedError frame.
	FeedError FeedMessageType = "error"
)

// Error codes carried by FeedError frames.
const (
	FeedCodePermissionDenied = "permission_denied"
	FeedCodeInternal         = "internal"
)

// FeedMessage is one text frame of GET /api/scans/subscribe.
type FeedMessage struct {
	Type     FeedMessageType `json:"type"`
	Snapshot *ScanSnapshot   `json:"snapshot,omitempty"`
	Code     string          `json:"code,omitempty"`
	Error    string          `json:"error,omitempty"`
}
