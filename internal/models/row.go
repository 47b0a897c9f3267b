package models

import "sort"

// Row is a column name to value mapping, both as produced by the
// normalizers and as returned by the backend.
type Row = map[string]any

// Schema is the fixed column allow-list of one entity.
type Schema struct {
	Entity  string
	Columns []string
}

var EventSchema = Schema{
	Entity: "event",
	Columns: []string{
		"slug",
		"name",
		"starts_at",
		"capacity",
		"banner_object_url",
		"created_by_user_id",
		"created_at",
	},
}

var AttendeeSchema = Schema{
	Entity: "attendee",
	Columns: []string{
		"attendee_id",
		"event_slug",
		"name",
		"email",
		"phone",
		"registered_at",
	},
}

// Allows reports whether column is part of the schema.
func (s Schema) Allows(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Check returns a *ValidationError naming every key of row outside the
// allow-list, or nil.
func (s Schema) Check(row Row) error {
	var unsupported []string
	for column := range row {
		if !s.Allows(column) {
			unsupported = append(unsupported, column)
		}
	}
	if len(unsupported) == 0 {
		return nil
	}

	sort.Strings(unsupported)
	verr := &ValidationError{}
	for _, column := range unsupported {
		verr.Add(column, "unsupported field: "+column)
	}
	return verr
}
