package guard_test

import (
	"errors"
	"testing"

	"quotation/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("quote command not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("VoidQuoteCommand must be created via NewVoidQuoteCommand")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample mirrors how commands embed the guard.
func TestConstructorGuardUsageExample(t *testing.T) {
	type voidRequest struct {
		quoteNo string
		reason  string
		guard   guard.ConstructorGuard
	}

	errNotConstructed := errors.New("voidRequest must be created via newVoidRequest")

	newVoidRequest := func(quoteNo, reason string) (voidRequest, error) {
		if quoteNo == "" {
			return voidRequest{}, errors.New("quote number is required")
		}
		if reason == "" {
			return voidRequest{}, errors.New("reason is required")
		}
		return voidRequest{quoteNo: quoteNo, reason: reason, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		req, err := newVoidRequest("Q-DXB-00001", "Customer cancelled")

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errNotConstructed))
		assert.Equal(t, "Q-DXB-00001", req.quoteNo)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var req voidRequest

		err := req.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newVoidRequest("Q-DXB-00001", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})
}
