package server

import "context"

// Server defines the lifecycle contract of the scan-history server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received or
	// Shutdown is called.
	RunServer()

	// Run serves until ctx is done or a component fails.
	Run(ctx context.Context) error

	// Shutdown stops a running server gracefully.
	Shutdown()
}
