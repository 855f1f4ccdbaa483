package errs_test

import (
	"errors"
	"testing"

	"deliveryapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("Order", "123")

		assert.Equal(t, "Order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: Order with key '123'", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("Customer", "123", cause)

		assert.Equal(t, "Customer", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: Customer, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("Product", 456)
		assert.Equal(t, "object not found: Product with key '456'", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("deliveryAddress", cause)

		assert.Equal(t, "deliveryAddress", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("note", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("missing token")

	assert.Equal(t, "missing token", err.Reason)
	assert.Equal(t, "unauthorized: missing token", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("order belongs to another customer")

	assert.Equal(t, "order belongs to another customer", err.Reason)
	assert.Equal(t, "access forbidden: order belongs to another customer", err.Error())
	assert.Equal(t, errs.ErrAccessForbidden, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("pay", "Confirmed", "only pending orders can be paid")

	assert.Equal(t, "pay", err.Operation)
	assert.Equal(t, "Confirmed", err.Status)
	assert.Equal(t,
		"invalid transition: only pending orders can be paid (operation: pay, status: Confirmed)",
		err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order was modified concurrently")

		assert.Equal(t, "order was modified concurrently", err.Detail)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: order was modified concurrently", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("email already registered", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: email already registered (cause: duplicate key value violates unique constraint)",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrAccessForbidden)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "access forbidden", errs.ErrAccessForbidden.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("Order", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewUnauthorizedError("no identity"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewForbiddenError("not the owner"), errs.ErrAccessForbidden)
		require.ErrorIs(t,
			errs.NewInvalidTransitionError("ship", "Pending", "only preparing orders can be shipped"),
			errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewConflictError("duplicate email"), errs.ErrConflict)
	})
}
