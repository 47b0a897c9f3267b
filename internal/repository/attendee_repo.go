package repository

import (
	"context"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/sirupsen/logrus"
)

type AttendeeRepository interface {
	Insert(ctx context.Context, row models.Row) (*database.Result, error)
	FindByEvent(ctx context.Context, eventSlug string) ([]models.Row, error)
	FindByID(ctx context.Context, attendeeID string) ([]models.Row, error)
	FindByEventAndEmail(ctx context.Context, eventSlug, email string) ([]models.Row, error)
}

type attendeeRepository struct {
	backend database.Backend
	table   Table
	log     logrus.FieldLogger
}

func NewAttendeeRepository(backend database.Backend, table Table, log logrus.FieldLogger) AttendeeRepository {
	return &attendeeRepository{backend: backend, table: table, log: log}
}

func (r *attendeeRepository) Insert(ctx context.Context, row models.Row) (*database.Result, error) {
	statement, err := query.Insert(r.table.Name, row)
	if err != nil {
		return nil, err
	}
	return execute(ctx, r.backend, r.log, statement)
}

func (r *attendeeRepository) FindByEvent(ctx context.Context, eventSlug string) ([]models.Row, error) {
	return selectRows(ctx, r.backend, r.log, query.Select{
		Table:       r.table.Name,
		Where:       []query.Condition{query.Eq("event_slug", eventSlug)},
		OrderByDesc: r.table.OrderColumn,
	})
}

func (r *attendeeRepository) FindByID(ctx context.Context, attendeeID string) ([]models.Row, error) {
	return selectRows(ctx, r.backend, r.log, query.Select{
		Table: r.table.Name,
		Where: []query.Condition{query.Eq("attendee_id", attendeeID)},
	})
}

// FindByEventAndEmail returns existing registrations of email for the event;
// normally zero or one row.
func (r *attendeeRepository) FindByEventAndEmail(ctx context.Context, eventSlug, email string) ([]models.Row, error) {
	return selectRows(ctx, r.backend, r.log, query.Select{
		Table: r.table.Name,
		Where: []query.Condition{
			query.Eq("event_slug", eventSlug),
			query.Eq("email", email),
		},
	})
}
