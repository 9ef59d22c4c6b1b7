package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/scan-history/models"
)

// DeleteDocument sends DELETE /api/scans/{id}.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/scans/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateScan sends POST /api/scans and returns the stored record.
func (c *Client) CreateScan(ctx context.Context, req models.CreateScanRequest) (models.ScanRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/scans")
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("create scan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScanRecord{}, err
	}

	var record models.ScanRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.ScanRecord{}, fmt.Errorf("decode create scan response: %w", err)
	}
	return record, nil
}

// ListScans sends GET /api/scans.
func (c *Client) ListScans(ctx context.Context) ([]models.ScanRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/scans")
	if err != nil {
		return nil, fmt.Errorf("list scans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ListScansResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list scans response: %w", err)
	}
	return list.Records, nil
}
