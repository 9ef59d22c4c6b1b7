package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/scan-history/models"
)

// renderRecords renders one card per record, newest first, marking the
// selected one.
func renderRecords(records []models.ScanRecord, selected int, width int, loc *time.Location) string {
	if len(records) == 0 {
		return emptyHistoryText
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}

		cursor := "  "
		title := varietyLabel(r)
		if i == selected {
			cursor = "> "
			title = selectedStyle.Render(title)
		}

		b.WriteString(cursor + title + "\n")
		b.WriteString("    " + ripenessLabel(r) + "\n")
		b.WriteString("    " + confidenceLabel(r) + "\n")
		b.WriteString("    " + capturedLabel(r, loc) + "\n")
		if i == selected && r.ImageRef != nil && *r.ImageRef != "" {
			b.WriteString("    " + helpStyle.Render(fitText("Image: "+*r.ImageRef, max(width-8, 20))) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
