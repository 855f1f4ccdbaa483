package queries_test

import (
	"testing"

	"deliveryapp/internal/core/application/usecases/queries"
	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func adminCaller(t *testing.T) auth.Caller {
	t.Helper()
	caller, err := auth.NewCaller(kernel.NewUUID(), auth.RoleAdmin)
	require.NoError(t, err)
	return caller
}

func TestNewGetOrderByIDQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetOrderByIDQuery(id, adminCaller(t))

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		require.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderByIDQuery(kernel.UUID{}, adminCaller(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validate", func(t *testing.T) {
		var query queries.GetOrderByIDQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderByIDQueryIsNotConstructed)
	})
}

func TestNewGetOrdersByCustomerQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetOrdersByCustomerQuery(id, adminCaller(t))

		require.NoError(t, err)
		require.True(t, query.CustomerID().IsEqual(id))
	})

	t.Run("empty customer id", func(t *testing.T) {
		_, err := queries.NewGetOrdersByCustomerQuery(kernel.UUID{}, adminCaller(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	require.NoError(t, queries.NewGetAllOrdersQuery().Validate())

	var query queries.GetAllOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewLoginQuery(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		query, err := queries.NewLoginQuery("  Maria@Example.com ", "secret1")

		require.NoError(t, err)
		require.Equal(t, "maria@example.com", query.Email())
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := queries.NewLoginQuery("  ", "secret1")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := queries.NewLoginQuery("maria@example.com", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
