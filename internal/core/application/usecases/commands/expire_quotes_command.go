package commands

import (
	"errors"
	"time"

	"quotation/internal/pkg/errs"
	"quotation/internal/pkg/guard"
)

var ErrExpireQuotesCommandIsNotConstructed = errors.New(
	"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
)

// ExpireQuotesCommand moves Active quotes whose validity ended before At to Expired.
type ExpireQuotesCommand struct {
	at time.Time

	guard guard.ConstructorGuard
}

func NewExpireQuotesCommand(at time.Time) (ExpireQuotesCommand, error) {
	if at.IsZero() {
		return ExpireQuotesCommand{}, errs.NewValueIsRequiredError("at")
	}
	return ExpireQuotesCommand{at: at, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotesCommandIsNotConstructed)
}

func (c ExpireQuotesCommand) At() time.Time {
	return c.at
}
