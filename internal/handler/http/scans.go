package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/models"
)

// listScans answers GET /api/scans with the authenticated device's history.
// An explicit device_id query parameter must name the same device.
func (h *Handler) listScans(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	deviceID, err := h.requestDevice(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	records, err := h.services.ScanService.ListScans(r.Context(), models.ScanFilter{OwnerDeviceID: deviceID})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.ListScansResponse{Records: records, Length: len(records)}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing scan list failed")
	}
}

// createScan answers POST /api/scans. The owner is always the token's device.
func (h *Handler) createScan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	deviceID, ok := utils.GetDeviceIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoDeviceInContext)
		return
	}

	var req models.CreateScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("decoding create scan request failed")
		h.writeError(w, r, ErrInvalidBody)
		return
	}

	capturedAt := req.CapturedAtMillis
	if capturedAt == nil {
		now := h.now().UnixMilli()
		capturedAt = &now
	}

	created, err := h.services.ScanService.CreateScan(r.Context(), models.ScanRecord{
		OwnerDeviceID:    deviceID,
		Variety:          req.Variety,
		Ripeness:         req.Ripeness,
		Confidence:       req.Confidence,
		ImageRef:         req.ImageRef,
		CapturedAtMillis: capturedAt,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing created scan failed")
	}
}

// deleteScan answers DELETE /api/scans/{id}. Only the owner can delete.
func (h *Handler) deleteScan(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := utils.GetDeviceIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoDeviceInContext)
		return
	}

	if err := h.services.ScanService.DeleteScan(r.Context(), deviceID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestDevice resolves the device a read request is scoped to.
func (h *Handler) requestDevice(r *http.Request) (string, error) {
	deviceID, ok := utils.GetDeviceIDFromContext(r.Context())
	if !ok {
		return "", ErrNoDeviceInContext
	}

	if requested := r.URL.Query().Get("device_id"); requested != "" && requested != deviceID {
		return "", ErrForeignDevice
	}
	return deviceID, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteError(w, errorMessage(err, status), status)
}
