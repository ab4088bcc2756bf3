package reaper

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mindi/config"
	"mindi/internal/negotiation"
	"mindi/pkg/logger"
)

const (
	defaultIdleTimeout = 12 * time.Hour
	defaultSweepEvery  = time.Minute
	defaultSweepBatch  = 100
	expiryReason       = "idle timeout"
)

// Reaper expires negotiations that have idled past the configured timeout.
// It drives the ordinary cancel path, so expiry goes through the same
// compare-and-swap and fan-out as any other mutation; a session that becomes
// active again between listing and cancelling simply wins the race.
type Reaper struct {
	repo     negotiation.NegotiationRepository
	sessions negotiation.NegotiationUsecase
	logger   logger.Logger
	config   config.Config
	now      func() time.Time
}

func NewReaper(repo negotiation.NegotiationRepository, sessions negotiation.NegotiationUsecase, logger logger.Logger, config config.Config) *Reaper {
	return &Reaper{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
		config:   config,
		now:      time.Now,
	}
}

// Run sweeps on a ticker until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.sweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				r.logger.Error("reaper sweep failed", "err", err)
			}
		}
	}
}

// Sweep expires one batch of idle sessions. Returns the first listing error;
// per-session cancel failures are logged and skipped.
func (r *Reaper) Sweep(ctx context.Context) error {
	cutoff := r.now().Add(-r.idleTimeout())

	idle, err := r.repo.ListIdleActive(ctx, cutoff, defaultSweepBatch)
	if err != nil {
		return err
	}

	for _, n := range idle {
		if _, err := r.sessions.Cancel(ctx, n.ID, uuid.Nil, expiryReason); err != nil {
			// Lost the race against fresh activity, or already terminal.
			r.logger.Warn("could not expire negotiation", "negotiation_id", n.ID, "err", err)
			continue
		}
		r.logger.Info("expired idle negotiation", "negotiation_id", n.ID, "last_activity_at", n.LastActivityAt)
	}
	return nil
}

func (r *Reaper) idleTimeout() time.Duration {
	if r.config.Negotiation.IdleTimeoutMinutes > 0 {
		return time.Duration(r.config.Negotiation.IdleTimeoutMinutes) * time.Minute
	}
	return defaultIdleTimeout
}

func (r *Reaper) sweepInterval() time.Duration {
	if r.config.Negotiation.ReapIntervalSeconds > 0 {
		return time.Duration(r.config.Negotiation.ReapIntervalSeconds) * time.Second
	}
	return defaultSweepEvery
}
