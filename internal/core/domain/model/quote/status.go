package quote

import (
	"fmt"
	"strings"

	"quotation/internal/pkg/errs"
)

// Status is the lifecycle state of a quote.
//
//	Draft ──> Active ──┬──> Converted ──┐
//	  │         │      └──> Expired ────┤
//	  └─────────┴───────────────────────┴──> Voided
//
// Converted and Expired are set by processes outside the lifecycle store and
// can only be voided afterwards. Voided is final: no transition leaves it.
type Status int

const (
	// Unknown catches uninitialised Status values.
	Unknown Status = iota
	Draft
	Active
	Converted
	Expired
	Voided
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Active:    "Active",
		Converted: "Converted",
		Expired:   "Expired",
		Voided:    "Voided",
	}
}

// allowedTransitions lists the states reachable from each state. Staying in
// the same state is handled separately.
func allowedTransitions() map[Status][]Status {
	//nolint:exhaustive // Voided and invalid states have no outgoing edges
	return map[Status][]Status{
		Draft:     {Active, Voided},
		Active:    {Voided, Converted, Expired},
		Converted: {Voided},
		Expired:   {Voided},
	}
}

// ParseStatus maps a stored status name (case-insensitive) to a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, needle) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Voided {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no other state can be entered from s.
// Only Voided is terminal; every other state can still be voided.
func (s Status) IsTerminal() bool {
	return s == Voided
}

// CanTransitionTo checks whether moving from s to next is allowed.
// Re-entering the current state is allowed for every state except Voided,
// which accepts no change at all.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s == Voided {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s quotes cannot be changed", s),
		)
	}
	if s == next {
		return nil
	}
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s cannot move to %s", s, next),
	)
}

// MarshalText stores the status by name.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
