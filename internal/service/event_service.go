package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eursukkul/regi-nexus/internal/metrics"
	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/normalize"
	"github.com/Eursukkul/regi-nexus/internal/repository"
	"github.com/Eursukkul/regi-nexus/pkg/database"
	"github.com/sirupsen/logrus"
)

type EventService interface {
	CreateEvent(ctx context.Context, payload map[string]any) (*CreatedEvent, error)
	ListEvents(ctx context.Context) ([]models.Row, error)
	GetEvent(ctx context.Context, slug string) ([]models.Row, error)
}

// CreatedEvent is the outcome of a successful insert.
type CreatedEvent struct {
	Table  string
	Row    models.Row
	Result *database.Result
}

// EventOptions controls which table events may be written to.
type EventOptions struct {
	Table              string
	AllowTableOverride bool
}

type eventService struct {
	repo       repository.EventRepository
	normalizer *normalize.Normalizer
	publisher  Publisher
	opts       EventOptions
	log        logrus.FieldLogger
}

func NewEventService(
	repo repository.EventRepository,
	normalizer *normalize.Normalizer,
	publisher Publisher,
	opts EventOptions,
	log logrus.FieldLogger,
) EventService {
	return &eventService{
		repo:       repo,
		normalizer: normalizer,
		publisher:  publisher,
		opts:       opts,
		log:        log.WithField("component", "event-service"),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, payload map[string]any) (*CreatedEvent, error) {
	if len(payload) == 0 {
		return nil, models.NewValidationError("body", "no event fields were provided for insert")
	}

	table, err := s.targetTable(payload)
	if err != nil {
		return nil, err
	}

	body := eventBody(payload)
	if len(body) == 0 {
		return nil, models.NewValidationError("body", "no event fields were provided for insert")
	}

	row, err := s.normalizer.Event(body)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Insert(ctx, table, row)
	if err != nil {
		if err = identifierToValidation(err); isValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	metrics.EventsCreated.Inc()
	s.log.WithFields(logrus.Fields{"table": table, "slug": row["slug"]}).Info("event created")
	publish(ctx, s.publisher, s.log, RoutingEventCreated, row)

	return &CreatedEvent{Table: table, Row: row, Result: res}, nil
}

// targetTable resolves the optional table_name field of a create request.
func (s *eventService) targetTable(payload map[string]any) (string, error) {
	v, ok := payload["table_name"]
	if !ok || v == nil {
		return s.opts.Table, nil
	}

	name, isString := v.(string)
	name = strings.TrimSpace(name)
	if !isString || name == "" {
		return "", models.NewValidationError("table_name", "table_name must be a non-empty string")
	}
	if name != s.opts.Table && !s.opts.AllowTableOverride {
		return "", models.NewValidationError("table_name", "table_name override is disabled")
	}
	return name, nil
}

// eventBody unwraps the {"table_name": ..., "data": {...}} envelope. Without
// a data object the payload itself, minus the envelope keys, is the body.
func eventBody(payload map[string]any) map[string]any {
	if data, ok := payload["data"].(map[string]any); ok {
		return data
	}

	body := make(map[string]any, len(payload))
	for key, value := range payload {
		if key != "table_name" && key != "data" {
			body[key] = value
		}
	}
	return body
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Row, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return rows, nil
}

func (s *eventService) GetEvent(ctx context.Context, slug string) ([]models.Row, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, models.NewValidationError("slug", "invalid or missing slug")
	}

	s.log.WithField("slug", slug).Debug("fetching event")
	rows, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if len(rows) == 0 {
		return nil, models.ErrEventNotFound
	}
	return rows, nil
}
