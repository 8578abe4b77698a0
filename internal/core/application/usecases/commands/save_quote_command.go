package commands

import (
	"errors"
	"fmt"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/pkg/errs"
	"quotation/internal/pkg/guard"
)

var ErrSaveQuoteCommandIsNotConstructed = errors.New(
	"SaveQuoteCommand must be created via NewSaveQuoteCommand constructor",
)

// SaveQuoteCommand stores a quote built from a form and its items.
// Saving as Active runs form and item validation first; drafts are stored as entered.
//
// Example:
//
//	cmd, err := NewSaveQuoteCommand(form, items, quote.Active)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if len(result.Violations) > 0 {
//	    return showErrors(services.Summarize(result.Violations))
//	}
type SaveQuoteCommand struct {
	form   quote.Form
	items  []quote.Item
	status quote.Status

	guard guard.ConstructorGuard
}

// NewSaveQuoteCommand accepts Draft or Active as the target status.
func NewSaveQuoteCommand(form quote.Form, items []quote.Item, status quote.Status) (SaveQuoteCommand, error) {
	if status != quote.Draft && status != quote.Active {
		return SaveQuoteCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("quotes are saved as Draft or Active, not %s", status),
		)
	}

	return SaveQuoteCommand{
		form:   form,
		items:  append([]quote.Item{}, items...),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SaveQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSaveQuoteCommandIsNotConstructed)
}

func (c SaveQuoteCommand) Form() quote.Form {
	return c.form
}

func (c SaveQuoteCommand) Items() []quote.Item {
	return append([]quote.Item{}, c.items...)
}

func (c SaveQuoteCommand) Status() quote.Status {
	return c.status
}
