package http

import (
	"errors"
	"net/http"

	contractDomain "nextgear-contracts/internal/domain/contract"

	"github.com/labstack/echo/v4"
)

const kindInternal = "Internal"

// ErrorInformation is the body of every non-2xx response.
type ErrorInformation struct {
	Status    int          `json:"status"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Exception string       `json:"exception"`
	Details   []FieldError `json:"details,omitempty"`
}

func writeError(c echo.Context, code int, kind, msg string, details ...FieldError) error {
	return c.JSON(code, ErrorInformation{
		Status:    code,
		Error:     http.StatusText(code),
		Message:   msg,
		Exception: kind,
		Details:   details,
	})
}

// respondErr maps rule violations to 400/404 and anything else to a logged 500.
func respondErr(c echo.Context, err error) error {
	var ce *contractDomain.Error
	if errors.As(err, &ce) {
		switch ce.Kind {
		case contractDomain.KindNotFound:
			return writeError(c, http.StatusNotFound, string(ce.Kind), ce.Message)
		default:
			return writeError(c, http.StatusBadRequest, string(ce.Kind), ce.Message)
		}
	}
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return writeError(c, http.StatusInternalServerError, kindInternal, "Internal server error")
}

// HTTPErrorHandler renders errors that escape handlers (unknown routes, 405, panics) in the same shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Internal server error"
	kind := kindInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
		switch code {
		case http.StatusNotFound:
			kind = string(contractDomain.KindNotFound)
		case http.StatusBadRequest:
			kind = string(contractDomain.KindInvalidArgument)
		default:
			if code < http.StatusInternalServerError {
				kind = http.StatusText(code)
			}
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = writeError(c, code, kind, msg)
}
