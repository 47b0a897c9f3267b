package service

import (
	"context"
	"errors"

	"github.com/Eursukkul/regi-nexus/internal/metrics"
	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
	"github.com/sirupsen/logrus"
)

// Routing keys of published notifications.
const (
	RoutingEventCreated       = "event.created"
	RoutingAttendeeRegistered = "attendee.registered"
)

// Publisher delivers notifications after successful writes. Services accept
// a nil Publisher, which disables notifications.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// publish is fire-and-forget: a failed notification never fails the write
// that triggered it.
func publish(ctx context.Context, p Publisher, log logrus.FieldLogger, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, payload); err != nil {
		metrics.PublishFailures.WithLabelValues(routingKey).Inc()
		log.WithError(err).WithField("routing_key", routingKey).Warn("failed to publish notification")
	}
}

// identifierToValidation turns an identifier rejection from the statement
// builder into a client error. Anything else is returned unchanged.
func identifierToValidation(err error) error {
	var idErr *query.IdentifierError
	if !errors.As(err, &idErr) {
		return err
	}
	field := idErr.Name
	if idErr.Kind == query.KindTable {
		field = "table_name"
	}
	return models.NewValidationError(field, idErr.Error())
}

func isValidation(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}
