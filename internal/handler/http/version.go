package http

import (
	"net/http"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, versionResponse{
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version response failed")
	}
}
