package models

// CreateScanRequest is the body of POST /api/scans. The owner device is taken
// from the bearer token, not from the body.
type CreateScanRequest struct {
	Variety    *string     `json:"variety,omitempty"`
	Ripeness   *string     `json:"ripeness,omitempty"`
	Confidence *Confidence `json:"confidence,omitempty"`
	ImageRef   *string     `json:"image_uri,omitempty"`

	// CapturedAtMillis defaults to the server receive time when omitted.
	CapturedAtMillis *int64 `json:"timestamp,omitempty"`
}

// ListScansResponse is the body of GET /api/scans.
type ListScansResponse struct {
	Records []ScanRecord `json:"records"`
	Length  int          `json:"length"`
}

// DeleteScanRequest names one scan owned by one device.
type DeleteScanRequest struct {
	OwnerDeviceID string
	ID            string
}
