package analyte

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMalformedRecord = errors.New("malformed analyte record")
	ErrMissingField    = errors.New("analyte record missing required field")
)

// closedDateLayouts are tried in order. The lab API serialises dates without a zone.
var closedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize converts a raw record into a typed Measurement.
// Zone-less dates are read as UTC.
func Normalize(raw RawRecord) (Measurement, error) {
	var m Measurement

	m.AnalyteName = strings.TrimSpace(textField(raw, FieldAnalyteName))
	if m.AnalyteName == "" {
		return Measurement{}, fmt.Errorf("%w: %s", ErrMissingField, FieldAnalyteName)
	}

	closed, ok := raw[FieldClosedDate]
	if !ok || closed == nil {
		return Measurement{}, fmt.Errorf("%w: %s", ErrMissingField, FieldClosedDate)
	}
	closedDate, err := parseClosedDate(closed)
	if err != nil {
		return Measurement{}, err
	}
	m.ClosedDate = closedDate

	value, present, err := numberField(raw, FieldAnalyteValue)
	if err != nil {
		return Measurement{}, err
	}
	if !present {
		return Measurement{}, fmt.Errorf("%w: %s is not a number", ErrMalformedRecord, FieldAnalyteValue)
	}
	m.Value = value

	refs := []struct {
		field string
		dst   *float64
	}{
		{FieldMean, &m.Mean},
		{FieldStdDeviation, &m.StdDeviation},
		{FieldMinLevel, &m.MinLevel},
		{FieldMaxLevel, &m.MaxLevel},
	}
	for _, ref := range refs {
		v, _, err := numberField(raw, ref.field)
		if err != nil {
			return Measurement{}, err
		}
		*ref.dst = v
	}

	if m.StdDeviation < 0 {
		return Measurement{}, fmt.Errorf("%w: %s is negative", ErrMalformedRecord, FieldStdDeviation)
	}
	if m.MinLevel > m.MaxLevel {
		return Measurement{}, fmt.Errorf("%w: %s %g exceeds %s %g", ErrMalformedRecord, FieldMinLevel, m.MinLevel, FieldMaxLevel, m.MaxLevel)
	}

	m.Initials = textField(raw, FieldInitials)
	m.Comment = textField(raw, FieldComment)
	return m, nil
}

// NormalizeAll normalizes raws in order. Records that fail are dropped and
// reported, one error per dropped record.
func NormalizeAll(raws []RawRecord) ([]Measurement, []error) {
	measurements := make([]Measurement, 0, len(raws))
	var rejected []error
	for i, raw := range raws {
		m, err := Normalize(raw)
		if err != nil {
			rejected = append(rejected, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		measurements = append(measurements, m)
	}
	return measurements, rejected
}

// numberField reports whether the field was present; absent and null are not an error.
func numberField(raw RawRecord, field string) (float64, bool, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return 0, false, nil
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s %q is not a number", ErrMalformedRecord, field, n.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s %q is not a number", ErrMalformedRecord, field, n)
		}
		f = parsed
	default:
		return 0, true, fmt.Errorf("%w: %s has type %T", ErrMalformedRecord, field, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true, fmt.Errorf("%w: %s is not a finite number", ErrMalformedRecord, field)
	}
	return f, true, nil
}

func textField(raw RawRecord, field string) string {
	switch v := raw[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func parseClosedDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range closedDateLayouts {
			if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %s %q is not a date", ErrMalformedRecord, FieldClosedDate, t)
	default:
		return time.Time{}, fmt.Errorf("%w: %s has type %T", ErrMalformedRecord, FieldClosedDate, v)
	}
}
