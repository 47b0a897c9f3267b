package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/labstack/echo/v4"
)

// otherMethods are answered with 405 on every route this package owns.
var otherMethods = []string{
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

func methodNotAllowed(allowed, path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed,
			fmt.Sprintf("Method %s not allowed. Use %s on %s", c.Request().Method, allowed, path))
	}
}

// decodeObject reads the request body as a JSON object. An empty body is an
// empty object; numbers are kept as json.Number.
func decodeObject(c echo.Context) (map[string]any, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return nil, he
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Unable to read request body").SetInternal(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body").SetInternal(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body").
			SetInternal(errors.New("unexpected data after JSON value"))
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object")
	}
	return obj, nil
}

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// serviceError wraps err in an *echo.HTTPError carrying message; the cause
// is rendered as the details of the error response.
func serviceError(err error, message string) *echo.HTTPError {
	return echo.NewHTTPError(statusFor(err), message).SetInternal(err)
}
