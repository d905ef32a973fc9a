// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server next to the HTTP
// listener. Every worker stops when the context passed to Run is cancelled.
package workers

import "context"

// Worker is a background job.
//
// Run blocks until ctx is done.
//
// Example implementation:
//
//	type tickWorker struct{ interval time.Duration }
//
//	func (w *tickWorker) Run(ctx context.Context) {
//	    ticker := time.NewTicker(w.interval)
//	    defer ticker.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return
//	        case <-ticker.C:
//	            // do work
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}
