package errs_test

import (
	"errors"
	"testing"

	"quotation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("quoteNo", "Q-DXB-00001")

		assert.Equal(t, "quoteNo", err.ParamName)
		assert.Equal(t, "Q-DXB-00001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: Q-DXB-00001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record deleted")
		err := errs.NewObjectNotFoundErrorWithCause("quoteNo", "Q-DXB-00007", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: quoteNo, ID is: Q-DXB-00007 (cause: record deleted)",
			err.Error())
	})

	t.Run("non string identifiers keep fmt verb output", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("itemId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("Voided is final")
		err := errs.NewValueIsInvalidErrorWithCause("status is invalid", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status is invalid (cause: Voided is final)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sequence", 100000, 1, 99999)

		assert.Equal(t, 100000, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 99999, err.Max)
		assert.Equal(t, "value is invalid: 100000 is sequence, min value is 1, max value is 99999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("counter overflow")
		err := errs.NewValueIsOutOfRangeErrorWithCause("sequence", 0, 1, 99999, cause)

		assert.Equal(t,
			"value is invalid: 0 is sequence, min value is 1, max value is 99999 (cause: counter overflow)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "line one\nline two", 0, 10)
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("voidReason")

		assert.Equal(t, "voidReason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: voidReason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("no authenticated user")
		err := errs.NewValueIsRequiredErrorWithCause("identity", cause)

		assert.Equal(t, "value is required: identity (cause: no authenticated user)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("quoteNo", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired)
}
