package commands

import (
	"errors"
	"fmt"

	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

// DefaultPurgeBatchSize bounds how many orders one purge run deletes.
const DefaultPurgeBatchSize = 100

var ErrPurgeEmptyOrdersCommandIsNotConstructed = errors.New(
	"PurgeEmptyOrdersCommand must be created via NewPurgeEmptyOrdersCommand constructor",
)

// PurgeEmptyOrdersCommand deletes orders that lost all their products while
// still PREPARING_FOR_DELIVERY. It is issued by a scheduled job.
type PurgeEmptyOrdersCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewPurgeEmptyOrdersCommand(batchSize int) (PurgeEmptyOrdersCommand, error) {
	if batchSize <= 0 {
		return PurgeEmptyOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size", fmt.Errorf("%d is not positive", batchSize))
	}

	return PurgeEmptyOrdersCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeEmptyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeEmptyOrdersCommandIsNotConstructed)
}

func (c PurgeEmptyOrdersCommand) BatchSize() int {
	return c.batchSize
}
