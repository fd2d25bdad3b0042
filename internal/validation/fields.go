// Package validation provides payload field checks shared by the
// scoring services. Scoring payloads are schemaless maps; each scorer
// declares the fields it needs and coerces them here.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Number coerces a payload value to float64. JSON numbers arrive as
// float64, but UI clients also send numeric strings.
func Number(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}

// RequiredNumber extracts a named numeric field from a payload.
func RequiredNumber(payload map[string]interface{}, field string) (float64, error) {
	value, ok := payload[field]
	if !ok || value == nil {
		return 0, fmt.Errorf("missing field: %s", field)
	}
	f, err := Number(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %v", field, value)
	}
	return f, nil
}

// RequiredNumbers extracts several numeric fields in order, failing on
// the first missing or non-coercible one.
func RequiredNumbers(payload map[string]interface{}, fields []string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, err := RequiredNumber(payload, field)
		if err != nil {
			return nil, err
		}
		values = append(values, f)
	}
	return values, nil
}

// OptionalNumber extracts a named numeric field, returning 0 when absent
// or non-coercible.
func OptionalNumber(payload map[string]interface{}, field string) float64 {
	value, ok := payload[field]
	if !ok || value == nil {
		return 0
	}
	f, err := Number(value)
	if err != nil {
		return 0
	}
	return f
}

// OptionalString extracts a named field as a string, returning "" when absent.
func OptionalString(payload map[string]interface{}, field string) string {
	value, ok := payload[field]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
