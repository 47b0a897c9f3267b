package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoColumns is returned by Insert when there is nothing to write.
var ErrNoColumns = errors.New("no columns to insert")

// Insert builds an INSERT statement for table. Columns are emitted in sorted
// order so the same row always produces the same statement.
func Insert(table string, values map[string]any) (string, error) {
	if err := checkIdentifier(KindTable, table); err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", ErrNoColumns
	}

	columns := make([]string, 0, len(values))
	for column := range values {
		if err := checkIdentifier(KindColumn, column); err != nil {
			return "", err
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	literals := make([]string, len(columns))
	for i, column := range columns {
		literals[i] = Literal(values[column])
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(literals, ", ")), nil
}

// Condition is a single equality predicate.
type Condition struct {
	Column string
	Value  any
}

// Eq is shorthand for Condition{Column: column, Value: value}.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Value: value}
}

// Select describes a SELECT * statement with optional AND-ed equality
// predicates and a descending sort column.
type Select struct {
	Table       string
	Where       []Condition
	OrderByDesc string
}

// Build renders the statement, validating every identifier first.
func (s Select) Build() (string, error) {
	if err := checkIdentifier(KindTable, s.Table); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(s.Table)

	for i, cond := range s.Where {
		if err := checkIdentifier(KindColumn, cond.Column); err != nil {
			return "", err
		}
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(cond.Column)
		b.WriteString(" = ")
		b.WriteString(Literal(cond.Value))
	}

	if s.OrderByDesc != "" {
		if err := checkIdentifier(KindColumn, s.OrderByDesc); err != nil {
			return "", err
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(s.OrderByDesc)
		b.WriteString(" DESC")
	}

	return b.String(), nil
}
