package http

import (
	"strings"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// callerContextKey is where the authenticated caller lives in the echo context.
const callerContextKey = "caller"

// Authenticate resolves the Authorization header into a caller. Requests
// without a bearer token proceed as anonymous; individual routes decide
// whether that is acceptable. A present but invalid token is rejected
// outright.
func Authenticate(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(callerContextKey, auth.Anonymous())
				return next(c)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return writeError(c, errs.NewUnauthorizedError("authorization header must use the Bearer scheme"))
			}

			caller, err := tokens.Verify(token)
			if err != nil {
				return writeError(c, err)
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// RequireAuthenticated rejects anonymous callers.
func RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !callerFrom(c).IsAuthenticated() {
			return writeError(c, errs.NewUnauthorizedError("authentication required"))
		}
		return next(c)
	}
}

// RequireAdmin rejects callers without the Admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := callerFrom(c)
		if !caller.IsAuthenticated() {
			return writeError(c, errs.NewUnauthorizedError("authentication required"))
		}
		if !caller.IsAdmin() {
			return writeError(c, errs.NewForbiddenError("admin role required"))
		}
		return next(c)
	}
}

// RequireCustomer rejects callers without the Customer role. Admins are
// rejected too: the guarded operations act on the caller's own customer
// profile, which admin accounts do not have.
func RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := callerFrom(c)
		if !caller.IsAuthenticated() {
			return writeError(c, errs.NewUnauthorizedError("authentication required"))
		}
		if caller.Role() != auth.RoleCustomer {
			return writeError(c, errs.NewForbiddenError("customer role required"))
		}
		return next(c)
	}
}

// callerFrom extracts the caller placed by Authenticate. Routes registered
// outside the authenticated group see an anonymous caller.
func callerFrom(c echo.Context) auth.Caller {
	if caller, ok := c.Get(callerContextKey).(auth.Caller); ok {
		return caller
	}
	return auth.Anonymous()
}
