package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// StatusCode maps an application error to its HTTP status.
func StatusCode(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, errs.ErrInfrastructureFail):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrRuleViolated):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// conflictAsBadRequest reports a lost race or a busy shipper as 400.
func conflictAsBadRequest(err error) error {
	if errors.Is(err, errs.ErrConflict) && !errors.Is(err, errs.ErrInfrastructureFail) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return err
}

// NewErrorHandler renders every failure as servers.Error. Internal failures
// are logged and hidden from the client.
func NewErrorHandler(logger *logrus.Entry) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := StatusCode(err)
		message := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			message = fmt.Sprint(he.Message)
		}
		if code >= http.StatusInternalServerError {
			logger.WithError(err).WithFields(logrus.Fields{
				"method": ctx.Request().Method,
				"path":   ctx.Path(),
			}).Error("request failed")
			message = http.StatusText(code)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.WithError(writeErr).Warn("failed to write error response")
		}
	}
}
