package handler

import (
	"net/http"
	"strings"

	"github.com/Eursukkul/regi-nexus/internal/dto"
	"github.com/Eursukkul/regi-nexus/internal/service"
	"github.com/labstack/echo/v4"
)

type AttendeeHandler struct {
	svc service.AttendeeService
}

func NewAttendeeHandler(svc service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{svc: svc}
}

func (h *AttendeeHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/attendee", h.RegisterAttendee)
	e.GET("/attendee", h.GetAttendees)
	e.Match(otherMethods, "/attendee", methodNotAllowed("GET or POST", "/attendee"))
}

func (h *AttendeeHandler) RegisterAttendee(c echo.Context) error {
	payload, err := decodeObject(c)
	if err != nil {
		return err
	}

	reg, err := h.svc.RegisterAttendee(c.Request().Context(), payload)
	if err != nil {
		return serviceError(err, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToAttendeeRegisteredResponse(reg.AttendeeID, reg.Result))
}

// GetAttendees looks up one attendee by ?attendee_id= or lists an event's
// attendees by ?event_slug=. attendee_id wins when both are set.
func (h *AttendeeHandler) GetAttendees(c echo.Context) error {
	ctx := c.Request().Context()
	attendeeID := strings.TrimSpace(c.QueryParam("attendee_id"))
	eventSlug := strings.TrimSpace(c.QueryParam("event_slug"))

	switch {
	case attendeeID != "":
		rows, err := h.svc.GetAttendee(ctx, attendeeID)
		if err != nil {
			return serviceError(err, "Unable to fetch attendee(s)")
		}
		return c.JSON(http.StatusOK, dto.Success("", rows))
	case eventSlug != "":
		rows, err := h.svc.ListAttendees(ctx, eventSlug)
		if err != nil {
			return serviceError(err, "Unable to fetch attendee(s)")
		}
		return c.JSON(http.StatusOK, dto.Success("", rows))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Provide either event_slug or attendee_id as a query parameter")
	}
}
