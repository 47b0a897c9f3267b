package normalize

import (
	"regexp"
	"strings"

	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var attendeeInputKeys = map[string]bool{
	"attendee_id":   true,
	"event_slug":    true,
	"name":          true,
	"email":         true,
	"phone":         true,
	"registered_at": true,
}

// Attendee validates a registration payload and returns its canonical row.
// A missing attendee_id is generated.
func (n *Normalizer) Attendee(raw map[string]any) (models.Row, error) {
	verr := &models.ValidationError{}
	row := models.Row{}

	if slug, ok := requiredString(raw, "event_slug", verr); ok {
		row["event_slug"] = slug
	}
	if name, ok := requiredString(raw, "name", verr); ok {
		row["name"] = name
	}

	if email, ok := requiredString(raw, "email", verr); ok {
		email = strings.ToLower(email)
		if emailPattern.MatchString(email) {
			row["email"] = email
		} else {
			verr.Add("email", "email is not a valid email address")
		}
	}

	if phone, ok := optionalString(raw, "phone", verr); ok && phone != "" {
		row["phone"] = phone
	}

	switch v := raw["attendee_id"].(type) {
	case nil:
		row["attendee_id"] = n.newID()
	case string:
		if id := strings.TrimSpace(v); id != "" {
			row["attendee_id"] = id
		} else {
			row["attendee_id"] = n.newID()
		}
	default:
		verr.Add("attendee_id", "attendee_id must be a string")
	}

	registeredAt := n.now()
	if !isBlank(raw, "registered_at") {
		ts, err := parseTimestamp(raw["registered_at"])
		if err != nil {
			verr.Add("registered_at", "registered_at is not a valid date/time")
		}
		registeredAt = ts
	}
	row["registered_at"] = query.FormatTimestamp(registeredAt)

	carryUnconsumed(row, raw, attendeeInputKeys)
	verr.Merge(models.AttendeeSchema.Check(row))

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return row, nil
}
