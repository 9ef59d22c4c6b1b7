package history

import (
	"slices"

	"github.com/MKhiriev/scan-history/models"
)

// normalize turns a snapshot result into the rendered order: records of other
// owners are dropped, the first occurrence of an id wins and the rest is
// stable-sorted by capture time, newest first. Undated records sort as 0.
func normalize(records []models.ScanRecord, ownerDeviceID string) []models.ScanRecord {
	out := make([]models.ScanRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if rec.OwnerDeviceID != ownerDeviceID {
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}

	slices.SortStableFunc(out, compareNewestFirst)
	return out
}

func compareNewestFirst(a, b models.ScanRecord) int {
	ka, kb := a.SortKey(), b.SortKey()
	switch {
	case ka > kb:
		return -1
	case ka < kb:
		return 1
	default:
		return 0
	}
}

// without returns a copy of records lacking the element at i.
func without(records []models.ScanRecord, i int) []models.ScanRecord {
	out := make([]models.ScanRecord, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...)
}

// insertOrdered returns a copy of records with rec placed by the rendering
// order. Among equal capture times rec goes last.
func insertOrdered(records []models.ScanRecord, rec models.ScanRecord) []models.ScanRecord {
	pos, _ := slices.BinarySearchFunc(records, rec, func(existing, target models.ScanRecord) int {
		if compareNewestFirst(existing, target) > 0 {
			return 1
		}
		return -1
	})

	out := make([]models.ScanRecord, 0, len(records)+1)
	out = append(out, records[:pos]...)
	out = append(out, rec)
	return append(out, records[pos:]...)
}
