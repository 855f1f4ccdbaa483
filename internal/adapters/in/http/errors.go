package http

import (
	"errors"
	"net/http"

	"deliveryapp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes. Anything the core
// does not classify is a 500 with a generic message so internals never leak.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrAccessForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
