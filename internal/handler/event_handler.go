package handler

import (
	"net/http"
	"strings"

	"github.com/Eursukkul/regi-nexus/internal/dto"
	"github.com/Eursukkul/regi-nexus/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/event", h.CreateEvent)
	e.GET("/event", h.GetEvents)
	e.Match(otherMethods, "/event", methodNotAllowed("GET or POST", "/event"))

	e.POST("/create_event", h.CreateEventInTable)
	postOnly := append([]string{http.MethodGet}, otherMethods...)
	e.Match(postOnly, "/create_event", methodNotAllowed("POST", "/create_event"))
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	payload, err := decodeObject(c)
	if err != nil {
		return err
	}

	created, err := h.svc.CreateEvent(c.Request().Context(), payload)
	if err != nil {
		return serviceError(err, "Unable to create event")
	}

	return c.JSON(http.StatusCreated, dto.Success("Event created successfully", created.Result))
}

// CreateEventInTable accepts either a bare event or the
// {"table_name": ..., "data": {...}} envelope and reports the backend result.
func (h *EventHandler) CreateEventInTable(c echo.Context) error {
	payload, err := decodeObject(c)
	if err != nil {
		return err
	}

	created, err := h.svc.CreateEvent(c.Request().Context(), payload)
	if err != nil {
		return serviceError(err, "Unable to create event")
	}

	return c.JSON(http.StatusCreated, dto.ToTableInsertResponse(created.Table, created.Result))
}

// GetEvents returns one event when ?slug= (or its alias ?id=) is set and
// every event otherwise.
func (h *EventHandler) GetEvents(c echo.Context) error {
	slug := strings.TrimSpace(c.QueryParam("slug"))
	if slug == "" {
		slug = strings.TrimSpace(c.QueryParam("id"))
	}

	if slug == "" {
		events, err := h.svc.ListEvents(c.Request().Context())
		if err != nil {
			return serviceError(err, "Unable to fetch events")
		}
		return c.JSON(http.StatusOK, dto.Success("", events))
	}

	event, err := h.svc.GetEvent(c.Request().Context(), slug)
	if err != nil {
		return serviceError(err, "Unable to fetch events")
	}
	return c.JSON(http.StatusOK, dto.Success("", event))
}
