package query

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	// NullLiteral is the backend's null token.
	NullLiteral = "NULL"

	// TimestampLayout is the only timestamp literal format the backend accepts.
	TimestampLayout = "2006-01-02 15:04:05"
)

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Escape doubles every single quote in s.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func quote(s string) string {
	return "'" + Escape(s) + "'"
}

// Literal encodes value as a statement literal. It is a minimal encoder for
// a backend without bind parameters: callers must validate identifiers
// separately with IsSafeIdentifier.
func Literal(value any) string {
	switch v := value.(type) {
	case nil:
		return NullLiteral
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return quote(v)
	case []byte:
		if v == nil {
			return NullLiteral
		}
		return quote(string(v))
	case time.Time:
		return quote(FormatTimestamp(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		f, err := v.Float64()
		if err != nil {
			return NullLiteral
		}
		return formatFloat(f)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullLiteral
		}
		return Literal(rv.Elem().Interface())
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if (rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
			return NullLiteral
		}
		if s, ok := value.(fmt.Stringer); ok {
			return quote(s.String())
		}
		b, err := json.Marshal(value)
		if err != nil {
			return quote(fmt.Sprint(value))
		}
		return quote(string(b))
	}

	if s, ok := value.(fmt.Stringer); ok {
		return quote(s.String())
	}
	return quote(fmt.Sprint(value))
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NullLiteral
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
