package commands

import (
	"errors"
	"fmt"
	"time"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

const maxStaleBatchSize = 1000

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand cancels up to batchSize pending orders older than ttl.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl       time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewCancelStaleOrdersCommand(ttl time.Duration, batchSize int) (CancelStaleOrdersCommand, error) {
	var errList []error
	if ttl <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl)))
	}
	if batchSize < 1 || batchSize > maxStaleBatchSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxStaleBatchSize))
	}
	if err := errors.Join(errList...); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return CancelStaleOrdersCommand{ttl: ttl, batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

func (c CancelStaleOrdersCommand) TTL() time.Duration { return c.ttl }
func (c CancelStaleOrdersCommand) BatchSize() int     { return c.batchSize }
