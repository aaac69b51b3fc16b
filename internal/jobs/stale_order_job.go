package jobs

import (
	"context"
	"log/slog"
	"time"

	"checkout/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

const staleOrderBatchSize = 100

type StaleOrderCanceler interface {
	Handle(ctx context.Context, cmd commands.CancelStaleOrdersCommand) (int, error)
}

// StaleOrderJob cancels pending orders whose payment window has expired.
// It runs every minute.
type StaleOrderJob struct {
	handler  StaleOrderCanceler
	ttl      time.Duration
	canceled prometheus.Counter
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaleOrderJob(
	handler StaleOrderCanceler,
	ttl time.Duration,
	canceled prometheus.Counter,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		ttl:      ttl,
		canceled: canceled,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "stale_order_job"),
	}
}

func (j *StaleOrderJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)", "ttl", j.ttl.String())
	return nil
}

// RunOnce cancels stale orders until a batch comes back short.
func (j *StaleOrderJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewCancelStaleOrdersCommand(j.ttl, staleOrderBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid stale order command", "error", err)
		return
	}

	for {
		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation failed", "error", err)
			return
		}
		j.canceled.Add(float64(n))
		if n > 0 {
			j.logger.InfoContext(ctx, "Canceled stale orders", "count", n)
		}
		if n < staleOrderBatchSize {
			return
		}
	}
}

func (j *StaleOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
