package jobs

import (
	"context"
	"log/slog"

	"checkout/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
}

// OutboxRelayJob publishes pending order events every second.
type OutboxRelayJob struct {
	handler   OutboxRelayer
	batchSize int
	published prometheus.Counter
	failed    prometheus.Counter
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(
	handler OutboxRelayer,
	batchSize int,
	published, failed prometheus.Counter,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		published: published,
		failed:    failed,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// RunOnce performs a single relay pass.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid outbox relay command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.published.Add(float64(result.Published))
	j.failed.Add(float64(result.Failed))
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", result.Published)
		return
	}
	if result.Published > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", result.Published)
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
