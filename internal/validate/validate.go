// Package validate turns raw request values into checked calculator inputs.
//
// Raw values come either from an HTML form (strings) or from a JSON body
// (float64, string or nil). Every failure is a *calcerr.Error of kind
// Validation naming the offending field.
package validate

import (
	"Steelcheck/internal/calc/calcerr"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw is a decoded request body keyed by field name.
type Raw map[string]any

// Range bounds a numeric field. Max is only enforced when HasMax is set.
type Range struct {
	Min          float64
	Max          float64
	HasMax       bool
	ExclusiveMin bool
}

var (
	NonNegativeRange = Range{Min: 0}
	PositiveRange    = Range{Min: 0, ExclusiveMin: true}
)

func Between(min, max float64) Range {
	return Range{Min: min, Max: max, HasMax: true}
}

// Numeric parses value as a finite float64 and checks it against r.
func Numeric(value any, field string, r Range) (float64, error) {
	v, err := toFloat(value, field)
	if err != nil {
		return 0, err
	}
	if r.ExclusiveMin && v <= r.Min {
		return 0, calcerr.Validation(field, "must be greater than %g, got %g", r.Min, v)
	}
	if v < r.Min {
		if r.Min == 0 {
			return 0, calcerr.Validation(field, "cannot be negative, got %g", v)
		}
		return 0, calcerr.Validation(field, "must be at least %g, got %g", r.Min, v)
	}
	if r.HasMax && v > r.Max {
		return 0, calcerr.Validation(field, "must be at most %g, got %g", r.Max, v)
	}
	return v, nil
}

func NonNegative(value any, field string) (float64, error) {
	return Numeric(value, field, NonNegativeRange)
}

func Positive(value any, field string) (float64, error) {
	return Numeric(value, field, PositiveRange)
}

func toFloat(value any, field string) (float64, error) {
	var v float64
	switch t := value.(type) {
	case nil:
		return 0, calcerr.Validation(field, "is required")
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int64:
		v = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, calcerr.Validation(field, "must be a numeric value, got %q", t.String())
		}
		v = f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, calcerr.Validation(field, "is required")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, calcerr.Validation(field, "must be a numeric value, got %q", t)
		}
		v = f
	default:
		return 0, calcerr.Validation(field, "must be a numeric value, got %T", value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Validation(field, "must be a finite number")
	}
	return v, nil
}

// Enum matches value against allowed ignoring case and surrounding spaces and
// returns the canonical member.
func Enum[T ~string](value any, field string, allowed []T) (T, error) {
	var zero T
	s, ok := value.(string)
	if !ok {
		if value == nil {
			return zero, calcerr.Validation(field, "is required")
		}
		return zero, calcerr.Validation(field, "must be a string, got %T", value)
	}
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return zero, calcerr.Validation(field, "invalid value %q, must be one of: %s", s, strings.Join(names, ", "))
}

// get returns the first present, non-empty value among names. The returned
// field is the name used in error messages.
func (raw Raw) get(names ...string) (any, string, bool) {
	for _, n := range names {
		v, ok := raw[n]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, n, true
	}
	return nil, names[0], false
}

func (raw Raw) required(r Range, names ...string) (float64, error) {
	v, field, _ := raw.get(names...)
	return Numeric(v, field, r)
}

// optional returns def when none of names is present.
func (raw Raw) optional(r Range, def float64, names ...string) (float64, error) {
	v, field, ok := raw.get(names...)
	if !ok {
		return def, nil
	}
	return Numeric(v, field, r)
}

func (raw Raw) optionalPtr(r Range, names ...string) (*float64, error) {
	v, field, ok := raw.get(names...)
	if !ok {
		return nil, nil
	}
	f, err := Numeric(v, field, r)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Text returns the trimmed string value of field, or "" when absent.
func (raw Raw) Text(field string) string {
	v, _, ok := raw.get(field)
	if !ok {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(v)
}
