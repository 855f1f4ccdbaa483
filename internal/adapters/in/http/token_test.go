package http

import (
	"testing"
	"time"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()

	tokens, err := NewTokenService([]byte("test-signing-key"), "deliveryapp", "deliveryapp-api", ttl)
	require.NoError(t, err)
	return tokens
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := NewTokenService(nil, "deliveryapp", "deliveryapp-api", time.Hour)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewTokenService([]byte("key"), "deliveryapp", "deliveryapp-api", 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTestTokenService(t, time.Hour)
	accountID := kernel.NewUUID()

	signed, expiresAt, err := tokens.Issue(accountID, "admin@example.com", "Grace Hopper", auth.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

	caller, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.True(t, caller.IsAuthenticated())
	assert.True(t, caller.IsAdmin())
	assert.True(t, caller.UserID().IsEqual(accountID))
}

func TestTokenService_Verify_CustomerRole(t *testing.T) {
	tokens := newTestTokenService(t, time.Hour)

	signed, _, err := tokens.Issue(kernel.NewUUID(), "user@example.com", "Ada Lovelace", auth.RoleCustomer)
	require.NoError(t, err)

	caller, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.True(t, caller.IsAuthenticated())
	assert.False(t, caller.IsAdmin())
	assert.Equal(t, auth.RoleCustomer, caller.Role())
}

func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService(t, time.Nanosecond)

	signed, _, err := tokens.Issue(kernel.NewUUID(), "user@example.com", "Ada Lovelace", auth.RoleCustomer)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	caller, err := tokens.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, caller.IsAuthenticated())
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	tokens := newTestTokenService(t, time.Hour)

	otherTokens, err := NewTokenService([]byte("another-key"), "deliveryapp", "deliveryapp-api", time.Hour)
	require.NoError(t, err)

	signed, _, err := otherTokens.Issue(kernel.NewUUID(), "user@example.com", "Ada Lovelace", auth.RoleCustomer)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestTokenService_Verify_WrongAudience(t *testing.T) {
	tokens := newTestTokenService(t, time.Hour)

	otherService, err := NewTokenService([]byte("test-signing-key"), "deliveryapp", "some-other-api", time.Hour)
	require.NoError(t, err)

	signed, _, err := otherService.Issue(kernel.NewUUID(), "user@example.com", "Ada Lovelace", auth.RoleCustomer)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	tokens := newTestTokenService(t, time.Hour)

	_, err := tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
