package commands

import (
	"errors"
	"strings"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/pkg/errs"
	"quotation/internal/pkg/guard"
)

var ErrUpdateQuoteCommandIsNotConstructed = errors.New(
	"UpdateQuoteCommand must be created via NewUpdateQuoteCommand constructor",
)

// UpdateQuoteCommand applies a partial change to a stored quote. Nil fields
// are left as they are; new items replace the old ones and are re-priced.
type UpdateQuoteCommand struct {
	quoteNo    string
	status     *quote.Status
	voidReason *string
	form       *quote.Form
	items      []quote.Item

	guard guard.ConstructorGuard
}

// UpdateQuoteParams lists the changes of an UpdateQuoteCommand.
type UpdateQuoteParams struct {
	Status     *quote.Status
	VoidReason *string
	Form       *quote.Form
	Items      []quote.Item
}

func NewUpdateQuoteCommand(quoteNo string, p UpdateQuoteParams) (UpdateQuoteCommand, error) {
	quoteNo = strings.TrimSpace(quoteNo)
	if quoteNo == "" {
		return UpdateQuoteCommand{}, errs.NewValueIsRequiredError("quoteNo")
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return UpdateQuoteCommand{}, err
		}
	}

	cmd := UpdateQuoteCommand{
		quoteNo:    quoteNo,
		status:     p.Status,
		voidReason: p.VoidReason,
		form:       p.Form,
		guard:      guard.NewConstructorGuard(),
	}
	if p.Items != nil {
		cmd.items = append([]quote.Item{}, p.Items...)
	}
	return cmd, nil
}

func (c UpdateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuoteCommandIsNotConstructed)
}

func (c UpdateQuoteCommand) QuoteNo() string {
	return c.quoteNo
}

func (c UpdateQuoteCommand) Status() *quote.Status {
	return c.status
}

func (c UpdateQuoteCommand) VoidReason() *string {
	return c.voidReason
}

func (c UpdateQuoteCommand) Form() *quote.Form {
	return c.form
}

// Items is nil when the items are not being replaced.
func (c UpdateQuoteCommand) Items() []quote.Item {
	return c.items
}
