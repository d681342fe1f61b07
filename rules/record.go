package rules

// Record is a flat map of attributes a rule predicate evaluates
// against. Check requests arrive as JSON objects and decode directly
// into a Record; the typed getters absorb the usual JSON number and
// string looseness.
type Record map[string]any

// String returns the field as a string, or "" when absent or not a
// string.
func (r Record) String(field string) string {
	if v, ok := r[field].(string); ok {
		return v
	}
	return ""
}

// Int returns the field as an int. JSON decoding produces float64 for
// numbers, so both int and float64 are accepted.
func (r Record) Int(field string) int {
	switch v := r[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Float returns the field as a float64, accepting ints as well.
func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns the field as a bool, or false when absent.
func (r Record) Bool(field string) bool {
	if v, ok := r[field].(bool); ok {
		return v
	}
	return false
}

// Has reports whether the field is present at all.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}
