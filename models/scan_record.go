package models

// ScanRecord is one persisted fruit scan as stored in the scan_history
// collection. Every optional attribute is a pointer so that an absent value
// survives the round trip through JSON and SQL unchanged.
type ScanRecord struct {
	// ID is the opaque, stable identifier of the document.
	ID string `json:"id"`

	// OwnerDeviceID is the partition key: the device that captured the scan.
	OwnerDeviceID string `json:"device_id"`

	// Variety is the classifier's variety label (e.g. "Carabao").
	Variety *string `json:"variety,omitempty"`

	// Ripeness is the classifier's ripeness stage (e.g. "Almost Ripe").
	Ripeness *string `json:"ripeness,omitempty"`

	// Confidence is the classifier confidence as reported by the device.
	Confidence *Confidence `json:"confidence,omitempty"`

	// ImageRef is a URI pointing at the captured image.
	ImageRef *string `json:"image_uri,omitempty"`

	// CapturedAtMillis is the capture time in epoch milliseconds.
	// Nil means the capture date is unknown.
	CapturedAtMillis *int64 `json:"timestamp,omitempty"`
}

// SortKey returns the value records are ordered by. Records without a capture
// time sort as epoch zero, i.e. after every dated record in descending order.
func (r ScanRecord) SortKey() int64 {
	if r.CapturedAtMillis == nil {
		return 0
	}
	return *r.CapturedAtMillis
}

// ScanFilter selects the documents a live query or a listing returns.
type ScanFilter struct {
	// OwnerDeviceID restricts the result set to one device's scans.
	OwnerDeviceID string `json:"device_id"`
}
