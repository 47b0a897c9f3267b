package service

import (
	"context"
	"errors"
	"time"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/normalize"
	"github.com/Eursukkul/regi-nexus/pkg/database"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	insertFn     func(ctx context.Context, table string, row models.Row) (*database.Result, error)
	findAllFn    func(ctx context.Context) ([]models.Row, error)
	findBySlugFn func(ctx context.Context, slug string) ([]models.Row, error)
	calls        int
}

func (m *mockEventRepo) Insert(ctx context.Context, table string, row models.Row) (*database.Result, error) {
	m.calls++
	return m.insertFn(ctx, table, row)
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]models.Row, error) {
	m.calls++
	return m.findAllFn(ctx)
}
func (m *mockEventRepo) FindBySlug(ctx context.Context, slug string) ([]models.Row, error) {
	m.calls++
	return m.findBySlugFn(ctx, slug)
}

// --- In-memory AttendeeRepository ---

// memoryAttendeeRepo keeps inserted rows so the duplicate guard can be
// exercised end to end. insertErr and findErr force failures.
type memoryAttendeeRepo struct {
	rows      []models.Row
	insertErr error
	findErr   error
	calls     int
}

func (m *memoryAttendeeRepo) Insert(ctx context.Context, row models.Row) (*database.Result, error) {
	m.calls++
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.rows = append(m.rows, row)
	return &database.Result{RowsAffected: 1}, nil
}

func (m *memoryAttendeeRepo) FindByEvent(ctx context.Context, eventSlug string) ([]models.Row, error) {
	m.calls++
	return m.filter(func(r models.Row) bool { return r["event_slug"] == eventSlug })
}

func (m *memoryAttendeeRepo) FindByID(ctx context.Context, attendeeID string) ([]models.Row, error) {
	m.calls++
	return m.filter(func(r models.Row) bool { return r["attendee_id"] == attendeeID })
}

func (m *memoryAttendeeRepo) FindByEventAndEmail(ctx context.Context, eventSlug, email string) ([]models.Row, error) {
	m.calls++
	return m.filter(func(r models.Row) bool {
		return r["event_slug"] == eventSlug && r["email"] == email
	})
}

func (m *memoryAttendeeRepo) filter(keep func(models.Row) bool) ([]models.Row, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	out := []models.Row{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// --- Mock Publisher ---

type publishedMessage struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	messages []publishedMessage
	err      error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	m.messages = append(m.messages, publishedMessage{routingKey: routingKey, payload: payload})
	return m.err
}

// --- Helpers ---

var errBackendDown = errors.New("backend unavailable")

func testNormalizer() *normalize.Normalizer {
	return &normalize.Normalizer{
		Now:   func() time.Time { return time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC) },
		NewID: func() string { return "att-generated" },
	}
}
