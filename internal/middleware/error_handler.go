package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Eursukkul/regi-nexus/internal/dto"
	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/labstack/echo/v4"
)

const unknownRouteMessage = `You might find the page you are looking for at "/" path`

// ErrorHandler renders every error as a dto.ErrorResponse. The wrapped
// cause of an *echo.HTTPError becomes the details field, and validation
// failures are listed per field.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := dto.ErrorResponse{
		Status:  dto.StatusError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			resp.Message = m
		} else if he.Message != nil {
			resp.Message = fmt.Sprint(he.Message)
		}
		if he.Internal != nil {
			resp.Details = he.Internal.Error()
		}
	} else {
		resp.Details = err.Error()
	}

	if errors.Is(err, echo.ErrNotFound) {
		resp.Message = unknownRouteMessage
	}

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Fields
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, resp)
}
