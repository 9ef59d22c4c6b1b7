// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device-side application runtime.
//
// It resolves the device identity, signs the device token and wires the
// server client, the serial dispatcher, the history controller and the
// terminal UI into a single process lifecycle.
package client
