// Package utils provides general-purpose helpers shared by the server and the
// client: context keys, JSON responses, the resty client wrapper, device
// tokens and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey is the key under which the authenticated device ID is stored
// in a request context.
var DeviceIDCtxKey = contextKey("deviceID")

// WithDeviceID returns a copy of ctx carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}

// GetDeviceIDFromContext retrieves the authenticated device ID. ok is false
// when the value is missing, empty or of an unexpected type.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
