// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the scan-history HTTP server and its background
// workers, including signal handling and graceful shutdown.
package server
