package commands

import (
	"context"
	"fmt"
	"time"

	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// RelayOutboxResult reports one relay pass.
type RelayOutboxResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler publishes outbox messages in insertion order.
// The pass stops at the first publish failure so that later events of the
// same order are never delivered ahead of earlier ones; messages published
// before the failure are still marked. Delivery is at-least-once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) (*RelayOutboxCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}
	return &RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	var result RelayOutboxResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}
	if len(messages) == 0 {
		return result, nil
	}

	published := make([]int64, 0, len(messages))
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			publishErr = fmt.Errorf("publish outbox message %d (%s): %w", msg.ID, msg.EventType, publishErr)
			result.Failed = 1
			break
		}
		published = append(published, msg.ID)
	}

	if len(published) > 0 {
		if err = repo.MarkPublished(ctx, published, h.now()); err != nil {
			return RelayOutboxResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return RelayOutboxResult{}, err
		}
		result.Published = len(published)
	}

	return result, publishErr
}
