// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if DeviceIDCtxKey.String() != "deviceID" {
		t.Errorf("expected 'deviceID', got '%s'", DeviceIDCtxKey.String())
	}
}

func TestGetDeviceIDFromContext_Success(t *testing.T) {
	ctx := WithDeviceID(context.Background(), "device-1")

	deviceID, ok := GetDeviceIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if deviceID != "device-1" {
		t.Errorf("expected device-1, got %s", deviceID)
	}
}

func TestGetDeviceIDFromContext_Missing(t *testing.T) {
	if _, ok := GetDeviceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetDeviceIDFromContext_WrongTypeOrEmpty(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, 42)
	if _, ok := GetDeviceIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}

	if _, ok := GetDeviceIDFromContext(WithDeviceID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty device id")
	}
}
