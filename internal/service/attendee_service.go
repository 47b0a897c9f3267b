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

// Registration outcomes recorded in metrics.Registrations.
const (
	outcomeRegistered = "registered"
	outcomeDuplicate  = "duplicate"
	outcomeInvalid    = "invalid"
	outcomeFailed     = "failed"
)

type AttendeeService interface {
	RegisterAttendee(ctx context.Context, payload map[string]any) (*Registration, error)
	ListAttendees(ctx context.Context, eventSlug string) ([]models.Row, error)
	GetAttendee(ctx context.Context, attendeeID string) ([]models.Row, error)
}

// Registration is the outcome of a successful registration.
type Registration struct {
	AttendeeID string
	Row        models.Row
	Result     *database.Result
}

type attendeeService struct {
	repo       repository.AttendeeRepository
	normalizer *normalize.Normalizer
	publisher  Publisher
	log        logrus.FieldLogger
}

func NewAttendeeService(
	repo repository.AttendeeRepository,
	normalizer *normalize.Normalizer,
	publisher Publisher,
	log logrus.FieldLogger,
) AttendeeService {
	return &attendeeService{
		repo:       repo,
		normalizer: normalizer,
		publisher:  publisher,
		log:        log.WithField("component", "attendee-service"),
	}
}

// RegisterAttendee normalizes the payload and inserts it unless the email is
// already registered for the event. The existence check and the insert are
// two separate statements, so concurrent registrations of the same email can
// both pass the check.
func (s *attendeeService) RegisterAttendee(ctx context.Context, payload map[string]any) (*Registration, error) {
	if len(payload) == 0 {
		metrics.Registrations.WithLabelValues(outcomeInvalid).Inc()
		return nil, models.NewValidationError("body", "no attendee fields were provided")
	}

	row, err := s.normalizer.Attendee(payload)
	if err != nil {
		metrics.Registrations.WithLabelValues(outcomeInvalid).Inc()
		return nil, err
	}

	eventSlug, _ := row["event_slug"].(string)
	email, _ := row["email"].(string)
	attendeeID, _ := row["attendee_id"].(string)
	log := s.log.WithFields(logrus.Fields{"event_slug": eventSlug, "attendee_id": attendeeID})

	existing, err := s.repo.FindByEventAndEmail(ctx, eventSlug, email)
	if err != nil {
		metrics.Registrations.WithLabelValues(outcomeFailed).Inc()
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if len(existing) > 0 {
		metrics.Registrations.WithLabelValues(outcomeDuplicate).Inc()
		log.Info("duplicate registration rejected")
		return nil, fmt.Errorf("%s is %w for this event", email, models.ErrConflict)
	}

	res, err := s.repo.Insert(ctx, row)
	if err != nil {
		if err = identifierToValidation(err); isValidation(err) {
			metrics.Registrations.WithLabelValues(outcomeInvalid).Inc()
			return nil, err
		}
		metrics.Registrations.WithLabelValues(outcomeFailed).Inc()
		return nil, fmt.Errorf("register attendee: %w", err)
	}

	metrics.Registrations.WithLabelValues(outcomeRegistered).Inc()
	log.Info("attendee registered")
	publish(ctx, s.publisher, s.log, RoutingAttendeeRegistered, row)

	return &Registration{AttendeeID: attendeeID, Row: row, Result: res}, nil
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventSlug string) ([]models.Row, error) {
	eventSlug = strings.TrimSpace(eventSlug)
	if eventSlug == "" {
		return nil, models.NewValidationError("event_slug", "invalid or missing event_slug")
	}

	s.log.WithField("event_slug", eventSlug).Debug("fetching attendees for event")
	rows, err := s.repo.FindByEvent(ctx, eventSlug)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return rows, nil
}

func (s *attendeeService) GetAttendee(ctx context.Context, attendeeID string) ([]models.Row, error) {
	attendeeID = strings.TrimSpace(attendeeID)
	if attendeeID == "" {
		return nil, models.NewValidationError("attendee_id", "invalid or missing attendee_id")
	}

	s.log.WithField("attendee_id", attendeeID).Debug("fetching attendee")
	rows, err := s.repo.FindByID(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if len(rows) == 0 {
		return nil, models.ErrAttendeeNotFound
	}
	return rows, nil
}
