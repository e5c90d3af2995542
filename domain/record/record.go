package record

// Record is a single observation: a mapping from field name to a scalar value.
// Values may be numeric, textual, boolean, nil, or anything else the caller
// put there; every operation that needs a number simply skips the rest.
type Record map[string]any

// Has reports whether the record carries the named field at all.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Numeric returns the field's value as a float64 when it is numeric.
func (r Record) Numeric(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	return NumericValue(v)
}

// Dataset is an ordered sequence of records. It is supplied once at analyzer
// construction and treated as immutable: no operation in this module mutates
// it, and the caller retains ownership.
type Dataset []Record

// NumericValues extracts the numeric values of the given field, preserving
// the order of first appearance. Records missing the field, or holding a
// non-numeric value for it, are silently skipped.
func (d Dataset) NumericValues(field string) []float64 {
	values := make([]float64, 0, len(d))
	for _, rec := range d {
		if v, ok := rec.Numeric(field); ok {
			values = append(values, v)
		}
	}
	return values
}

// NumericValue coerces a scalar to float64. Booleans and strings are never
// numeric, even when a string would parse as a number; type, not content,
// decides. Non-finite floats are accepted as-is.
func NumericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
