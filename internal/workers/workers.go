package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers side by side.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws; nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	workers := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			workers = append(workers, w)
		}
	}
	return &Workers{workers: workers}
}

// Run starts every worker and blocks until all of them return. The first
// non-nil error cancels the context shared by the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		eg.Go(func() error {
			return worker.Run(egCtx)
		})
	}
	return eg.Wait()
}
