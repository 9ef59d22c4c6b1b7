package tui

import "github.com/MKhiriev/scan-history/models"

type confirmModel struct {
	record models.ScanRecord
}

func (m confirmModel) View() string {
	content := titleStyle.Render("Delete this scan?") + "\n\n"
	content += "Are you sure you want to delete this scan record?\n"
	content += helpStyle.Render(varietyLabel(m.record)+", "+capturedLabel(m.record, nil)) + "\n\n"
	content += "y delete    n cancel"
	return overlayBoxStyle.Render(content)
}
