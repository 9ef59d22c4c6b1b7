package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/scan-history/models"
)

const scanHistoryTable = "scan_history"

var scanColumns = []string{
	"id",
	"device_id",
	"variety",
	"ripeness",
	"confidence",
	"image_uri",
	"captured_at",
}

func buildInsertScanQuery(b sq.StatementBuilderType, scan models.ScanRecord, createdAt int64) (string, []any, error) {
	var confidence *string
	if scan.Confidence != nil {
		raw := scan.Confidence.Raw()
		confidence = &raw
	}

	return b.Insert(scanHistoryTable).
		Columns(append(scanColumns, "created_at")...).
		Values(
			scan.ID,
			scan.OwnerDeviceID,
			scan.Variety,
			scan.Ripeness,
			confidence,
			scan.ImageRef,
			scan.CapturedAtMillis,
			createdAt,
		).
		ToSql()
}

// buildListScansQuery selects the records newest capture first. Undated
// records sort as epoch zero; ties keep insertion order.
func buildListScansQuery(b sq.StatementBuilderType, filter models.ScanFilter) (string, []any, error) {
	query := b.Select(scanColumns...).
		From(scanHistoryTable).
		OrderBy("COALESCE(captured_at, 0) DESC", "created_at ASC")

	if filter.OwnerDeviceID != "" {
		query = query.Where(sq.Eq{"device_id": filter.OwnerDeviceID})
	}

	return query.ToSql()
}

func buildDeleteScanQuery(b sq.StatementBuilderType, deviceID, id string) (string, []any, error) {
	return b.Delete(scanHistoryTable).
		Where(sq.Eq{"id": id, "device_id": deviceID}).
		ToSql()
}

// scanRow holds the nullable columns of one scan_history row.
type scanRow struct {
	id         string
	deviceID   string
	variety    sql.NullString
	ripeness   sql.NullString
	confidence sql.NullString
	imageURI   sql.NullString
	capturedAt sql.NullInt64
}

func (r *scanRow) dest() []any {
	return []any{&r.id, &r.deviceID, &r.variety, &r.ripeness, &r.confidence, &r.imageURI, &r.capturedAt}
}

func (r *scanRow) record() models.ScanRecord {
	rec := models.ScanRecord{
		ID:            r.id,
		OwnerDeviceID: r.deviceID,
		Variety:       nullString(r.variety),
		Ripeness:      nullString(r.ripeness),
		ImageRef:      nullString(r.imageURI),
	}
	if r.confidence.Valid {
		rec.Confidence = models.NewConfidence(r.confidence.String)
	}
	if r.capturedAt.Valid {
		v := r.capturedAt.Int64
		rec.CapturedAtMillis = &v
	}
	return rec
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
