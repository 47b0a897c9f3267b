package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/regi-nexus/internal/models"
)

var errNotTimestamp = errors.New("not a valid date/time")

// Zone-less layouts are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// isBlank reports whether key is absent, null or an empty string.
func isBlank(raw map[string]any, key string) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && strings.TrimSpace(s) == ""
}

func requiredString(raw map[string]any, key string, verr *models.ValidationError) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		verr.Add(key, key+" is required")
		return "", false
	}
	s, isString := v.(string)
	if !isString {
		verr.Add(key, key+" must be a string")
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		verr.Add(key, key+" is required")
		return "", false
	}
	return s, true
}

// optionalString coerces scalar values to their trimmed string form. It
// returns false when the key is absent or null.
func optionalString(raw map[string]any, key string, verr *models.ValidationError) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	case int, int32, int64:
		s = fmt.Sprint(t)
	default:
		verr.Add(key, key+" must be a string")
		return "", false
	}
	return strings.TrimSpace(s), true
}

// maxUnixMillis is the widest instant a JSON date can hold, 100,000,000
// days either side of the epoch.
const maxUnixMillis = 8.64e15

func parseTimestamp(v any) (time.Time, error) {
	var ts time.Time
	switch t := v.(type) {
	case time.Time:
		ts = t.UTC()
	case string:
		parsed, ok := parseTimestampString(strings.TrimSpace(t))
		if !ok {
			return time.Time{}, errNotTimestamp
		}
		ts = parsed
	default:
		ms, ok := toFloat(v)
		if !ok || math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxUnixMillis {
			return time.Time{}, errNotTimestamp
		}
		ts = time.UnixMilli(int64(ms)).UTC()
	}

	// The backend literal format has a four-digit year.
	if ts.Year() < 0 || ts.Year() > 9999 {
		return time.Time{}, errNotTimestamp
	}
	return ts, nil
}

func parseTimestampString(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// toFloat widens the numeric kinds a decoded payload can hold.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return f, err == nil
	}
	return 0, false
}

func nonNegativeInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if s, isString := v.(string); isString {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		f, ok = parsed, err == nil
	}
	if !ok {
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
