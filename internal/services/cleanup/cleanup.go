// Package cleanup prunes search log rows past their retention period.
package cleanup

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Pruner deletes rows created before cutoff
type Pruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service periodically removes search log rows older than maxAge
type Service struct {
	target          Pruner
	maxAge          time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service
func NewService(target Pruner, maxAge, cleanupInterval time.Duration) *Service {
	return &Service{
		target:          target,
		maxAge:          maxAge,
		cleanupInterval: cleanupInterval,
		now:             time.Now,
	}
}

// Start runs one prune immediately and then every cleanupInterval until ctx
// is cancelled or Stop is called. Calling Start on a running service is a no-op.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.prune(ctx)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.prune(ctx)
			case <-ctx.Done():
				log.Info().Msg("search log cleanup stopped")
				return
			}
		}
	}()

	log.Info().Dur("interval", s.cleanupInterval).Dur("max_age", s.maxAge).Msg("search log cleanup started")
}

// Stop stops the service and waits for the background loop to exit
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// RunOnce prunes expired rows and returns how many were removed
func (s *Service) RunOnce(ctx context.Context) (int64, error) {
	return s.target.DeleteOlderThan(ctx, s.now().Add(-s.maxAge))
}

func (s *Service) prune(ctx context.Context) {
	deleted, err := s.RunOnce(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("search log cleanup failed")
		return
	}
	if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Msg("pruned expired search logs")
	}
}
