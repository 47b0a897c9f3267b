package repository

import (
	"context"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/sirupsen/logrus"
)

type EventRepository interface {
	Insert(ctx context.Context, table string, row models.Row) (*database.Result, error)
	FindAll(ctx context.Context) ([]models.Row, error)
	FindBySlug(ctx context.Context, slug string) ([]models.Row, error)
}

type eventRepository struct {
	backend database.Backend
	table   Table
	log     logrus.FieldLogger
}

func NewEventRepository(backend database.Backend, table Table, log logrus.FieldLogger) EventRepository {
	return &eventRepository{backend: backend, table: table, log: log}
}

// Insert writes row into table. The table is a parameter because event
// creation may target a table other than the default one.
func (r *eventRepository) Insert(ctx context.Context, table string, row models.Row) (*database.Result, error) {
	statement, err := query.Insert(table, row)
	if err != nil {
		return nil, err
	}
	return execute(ctx, r.backend, r.log, statement)
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Row, error) {
	return selectRows(ctx, r.backend, r.log, query.Select{
		Table:       r.table.Name,
		OrderByDesc: r.table.OrderColumn,
	})
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) ([]models.Row, error) {
	return selectRows(ctx, r.backend, r.log, query.Select{
		Table: r.table.Name,
		Where: []query.Condition{query.Eq("slug", slug)},
	})
}
