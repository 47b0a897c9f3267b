package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/Eursukkul/regi-nexus/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake Backend ---

type fakeBackend struct {
	statements []string
	result     *database.Result
	err        error
}

func (f *fakeBackend) Execute(ctx context.Context, statement string) (*database.Result, error) {
	f.statements = append(f.statements, statement)
	return f.result, f.err
}

var (
	eventsTable    = Table{Name: "Events", OrderColumn: "created_at"}
	attendeesTable = Table{Name: "Attendees", OrderColumn: "registered_at"}
)

// --- Event repository ---

func TestEventRepository_Insert(t *testing.T) {
	backend := &fakeBackend{result: &database.Result{RowsAffected: 1}}
	repo := NewEventRepository(backend, eventsTable, logger.Discard())

	res, err := repo.Insert(context.Background(), "Events", models.Row{
		"name":     "Go Meetup",
		"slug":     "go-meetup",
		"capacity": 0,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)
	assert.Equal(t, []string{
		"INSERT INTO Events (capacity, name, slug) VALUES (0, 'Go Meetup', 'go-meetup')",
	}, backend.statements)
}

func TestEventRepository_Insert_InvalidColumnNeverReachesBackend(t *testing.T) {
	backend := &fakeBackend{}
	repo := NewEventRepository(backend, eventsTable, logger.Discard())

	_, err := repo.Insert(context.Background(), "Events", models.Row{"name); DROP TABLE Events; --": "x"})

	var idErr *query.IdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Contains(t, err.Error(), "invalid column name")
	assert.Empty(t, backend.statements)
}

func TestEventRepository_Insert_InvalidTable(t *testing.T) {
	backend := &fakeBackend{}
	repo := NewEventRepository(backend, eventsTable, logger.Discard())

	_, err := repo.Insert(context.Background(), "Events Attendees", models.Row{"name": "x"})

	var idErr *query.IdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, query.KindTable, idErr.Kind)
	assert.Empty(t, backend.statements)
}

func TestEventRepository_FindAll(t *testing.T) {
	backend := &fakeBackend{result: &database.Result{Rows: []map[string]any{{"slug": "a"}, {"slug": "b"}}}}
	repo := NewEventRepository(backend, eventsTable, logger.Discard())

	rows, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"SELECT * FROM Events ORDER BY created_at DESC"}, backend.statements)
}

func TestEventRepository_FindBySlug_EmptyResult(t *testing.T) {
	backend := &fakeBackend{result: &database.Result{}}
	repo := NewEventRepository(backend, eventsTable, logger.Discard())

	rows, err := repo.FindBySlug(context.Background(), "o'clock")

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Equal(t, []string{"SELECT * FROM Events WHERE slug = 'o''clock'"}, backend.statements)
}

func TestEventRepository_BackendError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}
	repo := NewEventRepository(backend, eventsTable, logger.Discard())

	_, err := repo.FindAll(context.Background())

	var backendErr *models.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "SELECT * FROM Events ORDER BY created_at DESC", backendErr.Statement)
	assert.Contains(t, err.Error(), "connection refused")
}

// --- Attendee repository ---

func TestAttendeeRepository_Statements(t *testing.T) {
	backend := &fakeBackend{result: &database.Result{}}
	repo := NewAttendeeRepository(backend, attendeesTable, logger.Discard())
	ctx := context.Background()

	_, err := repo.Insert(ctx, models.Row{"attendee_id": "a-1", "email": "a@b.com"})
	require.NoError(t, err)
	_, err = repo.FindByEvent(ctx, "conf2026")
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, "a-1")
	require.NoError(t, err)
	_, err = repo.FindByEventAndEmail(ctx, "conf2026", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"INSERT INTO Attendees (attendee_id, email) VALUES ('a-1', 'a@b.com')",
		"SELECT * FROM Attendees WHERE event_slug = 'conf2026' ORDER BY registered_at DESC",
		"SELECT * FROM Attendees WHERE attendee_id = 'a-1'",
		"SELECT * FROM Attendees WHERE event_slug = 'conf2026' AND email = 'a@b.com'",
	}, backend.statements)
}

func TestAttendeeRepository_Insert_InvalidColumn(t *testing.T) {
	backend := &fakeBackend{}
	repo := NewAttendeeRepository(backend, attendeesTable, logger.Discard())

	_, err := repo.Insert(context.Background(), models.Row{"e-mail": "a@b.com"})

	assert.EqualError(t, err, "invalid column name: e-mail")
	assert.Empty(t, backend.statements)
}
