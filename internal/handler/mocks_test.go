package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/service"
	"github.com/labstack/echo/v4"
)

// --- Mock EventService ---

type mockEventService struct {
	createFn func(ctx context.Context, payload map[string]any) (*service.CreatedEvent, error)
	listFn   func(ctx context.Context) ([]models.Row, error)
	getFn    func(ctx context.Context, slug string) ([]models.Row, error)
}

func (m *mockEventService) CreateEvent(ctx context.Context, payload map[string]any) (*service.CreatedEvent, error) {
	return m.createFn(ctx, payload)
}
func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Row, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) GetEvent(ctx context.Context, slug string) ([]models.Row, error) {
	return m.getFn(ctx, slug)
}

// --- Mock AttendeeService ---

type mockAttendeeService struct {
	registerFn func(ctx context.Context, payload map[string]any) (*service.Registration, error)
	listFn     func(ctx context.Context, eventSlug string) ([]models.Row, error)
	getFn      func(ctx context.Context, attendeeID string) ([]models.Row, error)
}

func (m *mockAttendeeService) RegisterAttendee(ctx context.Context, payload map[string]any) (*service.Registration, error) {
	return m.registerFn(ctx, payload)
}
func (m *mockAttendeeService) ListAttendees(ctx context.Context, eventSlug string) ([]models.Row, error) {
	return m.listFn(ctx, eventSlug)
}
func (m *mockAttendeeService) GetAttendee(ctx context.Context, attendeeID string) ([]models.Row, error) {
	return m.getFn(ctx, attendeeID)
}

// --- Helpers ---

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func httpError(err error) (*echo.HTTPError, bool) {
	he, ok := err.(*echo.HTTPError)
	return he, ok
}
