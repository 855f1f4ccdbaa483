package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliveryapp/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// pendingOrderLister is the slice of the order repository the watchdog needs.
type pendingOrderLister interface {
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}

// StaleOrderWatchdogJob periodically reports orders stuck in Pending longer
// than the threshold. Purely observational: a pending order may still be paid,
// so nothing is transitioned here.
type StaleOrderWatchdogJob struct {
	orders    pendingOrderLister
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderWatchdogJob creates the watchdog with the given staleness threshold.
func NewStaleOrderWatchdogJob(orders pendingOrderLister, threshold time.Duration, logger *slog.Logger) *StaleOrderWatchdogJob {
	return &StaleOrderWatchdogJob{
		orders:    orders,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_watchdog_job"),
	}
}

// Start begins the watchdog, scanning once per minute.
func (j *StaleOrderWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watchdog started",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the watchdog.
func (j *StaleOrderWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watchdog stopped")
}

// runOnce performs a single scan over pending orders.
func (j *StaleOrderWatchdogJob) runOnce(ctx context.Context) {
	pending, err := j.orders.GetAllInPendingStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order scan failed", "error", err)
		return
	}

	now := time.Now().UTC()
	stale := 0
	for _, o := range pending {
		age := now.Sub(o.CreatedAt())
		if age < j.threshold {
			continue
		}

		stale++
		j.logger.WarnContext(ctx, "Order pending past threshold",
			"order_id", o.ID().String(),
			"customer_id", o.CustomerID().String(),
			"age", age.Round(time.Second).String(),
		)
	}

	if stale > 0 {
		j.logger.InfoContext(ctx, "Stale order scan complete",
			"pending", len(pending), "stale", stale)
	}
}
