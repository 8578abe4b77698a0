package commands

import (
	"errors"

	"quotation/internal/pkg/guard"
)

var ErrReserveQuoteNumberCommandIsNotConstructed = errors.New(
	"ReserveQuoteNumberCommand must be created via NewReserveQuoteNumberCommand constructor",
)

// ReserveQuoteNumberCommand issues the next quote number for a new quote form.
type ReserveQuoteNumberCommand struct {
	guard guard.ConstructorGuard
}

func NewReserveQuoteNumberCommand() ReserveQuoteNumberCommand {
	return ReserveQuoteNumberCommand{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrReserveQuoteNumberCommandIsNotConstructed for zero values.
func (c ReserveQuoteNumberCommand) Validate() error {
	return c.guard.Validate(ErrReserveQuoteNumberCommandIsNotConstructed)
}
