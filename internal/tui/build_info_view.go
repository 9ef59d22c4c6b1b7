// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/scan-history/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, deviceID string) string {
	var b strings.Builder

	b.WriteString("Application: scan-history\n")
	b.WriteString("Version: ")
	b.WriteString(stringOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(stringOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(stringOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Device: ")
	b.WriteString(stringOrNA(deviceID))

	return renderPage(titleStyle.Render("ABOUT"), b.String(), "esc: back")
}

func stringOrNA(v string) string {
	return valueOrNA(&v)
}
