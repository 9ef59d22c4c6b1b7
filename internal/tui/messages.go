package tui

import "github.com/MKhiriev/scan-history/internal/history"

// listChangedMsg carries a controller event into the program.
type listChangedMsg struct {
	event history.ListChanged
}

type startedMsg struct {
	err error
}

type deleteRequestedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
