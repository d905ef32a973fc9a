// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/models"
	"github.com/rs/zerolog"
)

// reportWorker periodically logs the storage counts together with the
// oldest uploads and the least recently downloaded files. It only reports;
// nothing is ever deleted.
type reportWorker struct {
	files    service.FileService
	interval time.Duration
	limit    uint64
	logger   *logger.Logger
}

func newReportWorker(files service.FileService, cfg config.Workers, log *logger.Logger) *reportWorker {
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "report")
	})

	limit := cfg.ReportLimit
	if limit == 0 {
		limit = config.DefaultReportLimit
	}

	return &reportWorker{
		files:    files,
		interval: cfg.ReportInterval,
		limit:    limit,
		logger:   l,
	}
}

func (w *reportWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("report worker stopped")
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *reportWorker) report(ctx context.Context) {
	stats, err := w.files.Stats(ctx)
	if err != nil {
		w.logger.Err(err).Msg("error collecting storage stats")
		return
	}

	oldest, err := w.files.OldestUploads(ctx, w.limit)
	if err != nil {
		w.logger.Err(err).Msg("error listing oldest uploads")
		return
	}

	candidates, err := w.files.EvictionCandidates(ctx, w.limit)
	if err != nil {
		w.logger.Err(err).Msg("error listing eviction candidates")
		return
	}

	w.logger.Info().
		Int64("users", stats.Users).
		Int64("files", stats.Files).
		Strs("oldest_uploads", links(oldest)).
		Strs("eviction_candidates", links(candidates)).
		Msg("storage report")
}

func links(records []models.FileRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Link())
	}
	return out
}
