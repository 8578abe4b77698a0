package commands

import (
	"errors"
	"strings"

	"quotation/internal/pkg/errs"
	"quotation/internal/pkg/guard"
)

var ErrVoidQuoteCommandIsNotConstructed = errors.New(
	"VoidQuoteCommand must be created via NewVoidQuoteCommand constructor",
)

// VoidQuoteCommand cancels a quote. The reason is kept with the quote.
type VoidQuoteCommand struct {
	quoteNo string
	reason  string

	guard guard.ConstructorGuard
}

func NewVoidQuoteCommand(quoteNo, reason string) (VoidQuoteCommand, error) {
	cmd := VoidQuoteCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setQuoteNo(quoteNo),
		cmd.setReason(reason),
	); err != nil {
		return VoidQuoteCommand{}, err
	}
	return cmd, nil
}

func (c VoidQuoteCommand) Validate() error {
	return c.guard.Validate(ErrVoidQuoteCommandIsNotConstructed)
}

func (c VoidQuoteCommand) QuoteNo() string {
	return c.quoteNo
}

func (c VoidQuoteCommand) Reason() string {
	return c.reason
}

func (c *VoidQuoteCommand) setQuoteNo(quoteNo string) error {
	quoteNo = strings.TrimSpace(quoteNo)
	if quoteNo == "" {
		return errs.NewValueIsRequiredError("quoteNo")
	}
	c.quoteNo = quoteNo
	return nil
}

func (c *VoidQuoteCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
