package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/models"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

func mapStatus(statusCode int, rawBody []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(rawBody)

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(statusCode)
		}
		return fmt.Errorf("http %d: %s", statusCode, body)
	}
}

// errorMessage unwraps the server's {"error": "..."} body, falling back to
// the raw text.
func errorMessage(rawBody []byte) string {
	var resp utils.ErrorResponse
	if err := json.Unmarshal(rawBody, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(rawBody))
}

// mapFeedError converts a FeedError frame into a sentinel error.
func mapFeedError(code, message string) error {
	switch code {
	case models.FeedCodePermissionDenied:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, message)
	default:
		return fmt.Errorf("%w: %s", ErrStreamInterrupted, message)
	}
}
