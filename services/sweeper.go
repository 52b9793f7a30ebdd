package services

import (
	"context"
	"log"
	"time"

	"kbs-store/repositories"
)

// PinSweeper periodically removes expired PIN records. It backs up the
// store-level TTL index and covers deployments where the document store
// cannot expire fields on its own.
type PinSweeper struct {
	repo     repositories.PinRepository
	interval time.Duration
}

func NewPinSweeper(repo repositories.PinRepository, interval time.Duration) *PinSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PinSweeper{repo: repo, interval: interval}
}

// Run blocks until ctx is cancelled. Sweep failures are logged and retried
// on the next tick.
func (s *PinSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.repo.DeleteExpired(ctx)
			if err != nil {
				log.Println("pin sweep failed:", err)
				continue
			}
			if removed > 0 {
				log.Printf("pin sweep removed %d expired record(s)", removed)
			}
		}
	}
}
