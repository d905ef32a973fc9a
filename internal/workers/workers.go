// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A zero report interval
// leaves the set empty.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.ReportInterval > 0 {
		ws.workers = append(ws.workers, newReportWorker(services.FileService, cfg, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in its own goroutine and waits for all of them
// to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
