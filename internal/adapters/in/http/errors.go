package http

import (
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError translates application errors into HTTP responses: validation
// failures map to 400, missing objects to 404, OTP rejections to 403, state
// conflicts to 409 and lock contention to 503 with a Retry-After hint.
func writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, ErrorResponse{
			Code:    httpErr.Code,
			Message: fmt.Sprintf("%v", httpErr.Message),
		})
	}

	switch {
	case commands.IsOTPFailure(err):
		return writeStatus(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeStatus(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeStatus(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrConflict):
		return writeStatus(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrContention):
		ctx.Response().Header().Set("Retry-After", "1")
		return writeStatus(ctx, http.StatusServiceUnavailable, err)
	default:
		return writeStatus(ctx, http.StatusInternalServerError, err)
	}
}

func writeStatus(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
