package queries

import (
	"testing"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestCheckOrderAccess(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		err := checkOrderAccess(auth.Anonymous(), ownerID.Bytes())

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("admin may read any order", func(t *testing.T) {
		admin, err := auth.NewCaller(kernel.NewUUID(), auth.RoleAdmin)
		require.NoError(t, err)

		require.NoError(t, checkOrderAccess(admin, ownerID.Bytes()))
	})

	t.Run("owner may read their own order", func(t *testing.T) {
		owner, err := auth.NewCaller(ownerID, auth.RoleCustomer)
		require.NoError(t, err)

		require.NoError(t, checkOrderAccess(owner, ownerID.Bytes()))
	})

	t.Run("foreign customer is forbidden", func(t *testing.T) {
		other, err := auth.NewCaller(kernel.NewUUID(), auth.RoleCustomer)
		require.NoError(t, err)

		err = checkOrderAccess(other, ownerID.Bytes())

		require.ErrorIs(t, err, errs.ErrAccessForbidden)
	})
}
