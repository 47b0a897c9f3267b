package normalize

import (
	"github.com/Eursukkul/regi-nexus/internal/models"
	"github.com/Eursukkul/regi-nexus/internal/query"
)

var startsAtKeys = []string{"starts_at", "start_at", "start_time"}

var eventInputKeys = map[string]bool{
	"slug":               true,
	"name":               true,
	"starts_at":          true,
	"start_at":           true,
	"start_time":         true,
	"capacity":           true,
	"banner_object_url":  true,
	"created_by_user_id": true,
	"created_at":         true,
}

// Event validates an event payload and returns its canonical row. On
// failure the error is a *models.ValidationError listing every bad field.
func (n *Normalizer) Event(raw map[string]any) (models.Row, error) {
	verr := &models.ValidationError{}
	row := models.Row{}

	name, hasName := requiredString(raw, "name", verr)
	if hasName {
		row["name"] = name
	}

	startKey := ""
	for _, key := range startsAtKeys {
		if v, ok := raw[key]; ok && v != nil {
			startKey = key
			break
		}
	}
	if startKey == "" {
		verr.Add("starts_at", "starts_at is required")
	} else if ts, err := parseTimestamp(raw[startKey]); err != nil {
		verr.Add("starts_at", startKey+" is not a valid date/time")
	} else {
		row["starts_at"] = query.FormatTimestamp(ts)
	}

	if slug, ok := optionalString(raw, "slug", verr); ok && slug != "" {
		row["slug"] = slug
	} else if hasName {
		if derived := Slugify(name); derived != "" {
			row["slug"] = derived
		} else {
			verr.Add("slug", "slug could not be derived from name")
		}
	}

	if v, ok := raw["capacity"]; ok && v != nil {
		if capacity, valid := nonNegativeInt(v); valid {
			row["capacity"] = capacity
		} else {
			verr.Add("capacity", "capacity must be a non-negative integer")
		}
	}

	for _, key := range []string{"banner_object_url", "created_by_user_id"} {
		if s, ok := optionalString(raw, key, verr); ok {
			row[key] = s
		}
	}

	createdAt := n.now()
	if !isBlank(raw, "created_at") {
		ts, err := parseTimestamp(raw["created_at"])
		if err != nil {
			verr.Add("created_at", "created_at is not a valid date/time")
		}
		createdAt = ts
	}
	row["created_at"] = query.FormatTimestamp(createdAt)

	carryUnconsumed(row, raw, eventInputKeys)
	verr.Merge(models.EventSchema.Check(row))

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return row, nil
}
