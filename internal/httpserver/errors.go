package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/service"
	"github.com/Skotchmaster/idea_board/internal/transport"
	"github.com/Skotchmaster/idea_board/internal/validation"
)

// httpError translates a service error into the status and message the
// client sees. The cause is kept as Internal for logging.
func httpError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	var code int
	var msg string
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, "Please check your credentials"
	case errors.Is(err, service.ErrUnauthenticated):
		code, msg = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, service.ErrBanned):
		code, msg = http.StatusBadRequest, "Account is banned"
	case errors.Is(err, service.ErrInactive):
		code, msg = http.StatusBadRequest, "Account is not active"
	case errors.Is(err, service.ErrAlreadyExists):
		code, msg = http.StatusBadRequest, "User already exists"
	case errors.Is(err, service.ErrValidation):
		code, msg = http.StatusBadRequest, "Validation failed"
	case errors.Is(err, service.ErrNotFound):
		code, msg = http.StatusNotFound, "Not found"
	default:
		code, msg = http.StatusInternalServerError, "Internal error"
	}
	return echo.NewHTTPError(code, msg).SetInternal(err)
}

// ErrorHandler renders every error as an ErrorResponse.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := transport.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Path:      c.Request().URL.Path,
		Method:    c.Request().Method,
	}

	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		resp.Code = http.StatusBadRequest
		resp.Message = "Validation failed"
		resp.Errors = ve.Errors
	} else {
		he := httpError(err)
		resp.Code = he.Code
		resp.Message = messageOf(he)
		if he.Code >= http.StatusInternalServerError {
			logging.FromContext(c.Request().Context()).Error("unhandled_error", "status", he.Code, "error", err)
		}
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(resp.Code)
	} else {
		werr = c.JSON(resp.Code, resp)
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}

func messageOf(he *echo.HTTPError) string {
	if he.Code == http.StatusInternalServerError {
		return "Internal error"
	}
	if s, ok := he.Message.(string); ok {
		return s
	}
	return http.StatusText(he.Code)
}
