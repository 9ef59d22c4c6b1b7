// Package http implements the HTTP transport of the scan-history server.
//
// It exposes the REST routes for listing, recording and deleting scans, the
// websocket live feed, and the middleware chain in front of them: trace ids,
// access logging, device token authentication and response compression.
package http
