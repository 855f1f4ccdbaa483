package http

import (
	"net/http"
	"time"

	"deliveryapp/internal/core/application/usecases/commands"
	"deliveryapp/internal/core/application/usecases/queries"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body for POST /api/auth/register. Role is optional;
// anything but a recognized role name falls back to Customer.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
}

// Register handles POST /api/auth/register.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(),
		req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.registerAccountHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newAccountJSON(resp))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("body"))
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.loginHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	token, expiresAt, err := s.tokens.Issue(view.ID, view.Email, view.FullName, view.Role)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		ID:        view.ID.String(),
		Email:     view.Email,
		FullName:  view.FullName,
		Role:      view.Role.String(),
	})
}
