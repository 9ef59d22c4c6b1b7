package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/scan-history/models"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	capturedAtLayout = "Jan 02, 2006 03:04 PM"
	emptyHistoryText = "No history found for this device.\nTry scanning a mango first!"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

func varietyLabel(r models.ScanRecord) string {
	if r.Variety == nil || strings.TrimSpace(*r.Variety) == "" {
		return "Unknown Variety"
	}
	return *r.Variety
}

func ripenessLabel(r models.ScanRecord) string {
	return "Ripeness: " + valueOrNA(r.Ripeness)
}

// confidenceLabel shows the value exactly as the device reported it.
func confidenceLabel(r models.ScanRecord) string {
	if r.Confidence == nil || r.Confidence.Raw() == "" {
		return "Confidence: N/A"
	}
	return "Confidence: " + r.Confidence.Raw()
}

// capturedLabel formats the capture time in loc; nil means local time.
func capturedLabel(r models.ScanRecord, loc *time.Location) string {
	if r.CapturedAtMillis == nil {
		return "Scanned on: Unknown date"
	}
	if loc == nil {
		loc = time.Local
	}
	return "Scanned on: " + time.UnixMilli(*r.CapturedAtMillis).In(loc).Format(capturedAtLayout)
}

func valueOrNA(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "N/A"
	}
	return *v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
