package repository

import (
	"context"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/sirupsen/logrus"
)

// Table names a backend table and the column its lists are sorted by,
// newest first.
type Table struct {
	Name        string
	OrderColumn string
}

func execute(ctx context.Context, backend database.Backend, log logrus.FieldLogger, statement string) (*database.Result, error) {
	log.WithField("statement", statement).Debug("executing statement")

	res, err := backend.Execute(ctx, statement)
	if err != nil {
		return nil, &models.BackendError{Statement: statement, Err: err}
	}
	if res == nil {
		res = &database.Result{}
	}
	return res, nil
}

func selectRows(ctx context.Context, backend database.Backend, log logrus.FieldLogger, sel query.Select) ([]models.Row, error) {
	statement, err := sel.Build()
	if err != nil {
		return nil, err
	}

	res, err := execute(ctx, backend, log, statement)
	if err != nil {
		return nil, err
	}
	if res.Rows == nil {
		return []models.Row{}, nil
	}
	return res.Rows, nil
}
