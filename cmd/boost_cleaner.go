package main

import (
	"context"
	"log"
	"time"

	"github.com/operman-code/brojgar-worker/internal/services"
)

const (
	boostCleanerInterval = 5 * time.Minute
	boostCleanerTimeout  = 30 * time.Second
)

// startBoostCleaner periodically reverts boosts whose paid window has
// expired so stale promotions stop outranking fresh postings.
func startBoostCleaner(ctx context.Context, svc *services.JobService, infoLog, errorLog *log.Logger) {
	if svc == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(boostCleanerInterval)
		defer ticker.Stop()

		run := func() {
			runCtx, cancel := context.WithTimeout(ctx, boostCleanerTimeout)
			defer cancel()

			cleared, err := svc.ClearExpiredBoosts(runCtx, time.Now())
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("boost cleaner: failed to clear expired boosts: %v", err)
				}
				return
			}
			if cleared > 0 && infoLog != nil {
				infoLog.Printf("boost cleaner: cleared %d expired boosts", cleared)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
