package database

import (
	"context"
	"strings"
	"time"

	"github.com/Eursukkul/regi-nexus/internal/metrics"
	"gorm.io/gorm"
)

// Statement kinds used as metric labels.
const (
	KindSelect = "select"
	KindInsert = "insert"
	KindOther  = "other"
)

// Result is what the backend returns for one statement: rows for
// SELECT-class statements, an affected-row count for everything else.
type Result struct {
	Rows         []map[string]any `json:"rows,omitempty"`
	RowsAffected int64            `json:"rows_affected"`
}

// Backend executes one literal statement per call. It has no bind
// parameters; callers are responsible for building safe statement text.
type Backend interface {
	Execute(ctx context.Context, statement string) (*Result, error)
}

// GormBackend runs statements verbatim through gorm.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Execute(ctx context.Context, statement string) (*Result, error) {
	kind := StatementKind(statement)
	start := time.Now()
	defer func() {
		metrics.BackendStatementDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	if kind == KindSelect {
		rows := []map[string]any{}
		if err := b.db.WithContext(ctx).Raw(statement).Scan(&rows).Error; err != nil {
			metrics.BackendStatementErrors.WithLabelValues(kind).Inc()
			return nil, err
		}
		return &Result{Rows: rows}, nil
	}

	tx := b.db.WithContext(ctx).Exec(statement)
	if tx.Error != nil {
		metrics.BackendStatementErrors.WithLabelValues(kind).Inc()
		return nil, tx.Error
	}
	return &Result{RowsAffected: tx.RowsAffected}, nil
}

// StatementKind classifies a statement by its leading keyword.
func StatementKind(statement string) string {
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return KindOther
	}
	switch strings.ToLower(fields[0]) {
	case KindSelect:
		return KindSelect
	case KindInsert:
		return KindInsert
	}
	return KindOther
}
