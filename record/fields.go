package record

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrFieldNotFound is returned when a record has no field with the
// requested name.
var ErrFieldNotFound = errors.New("field not found")

// FieldError reports a failed field lookup or an unexpected field type.
//
// It satisfies errors.Is(err, ErrFieldNotFound) for missing fields.
type FieldError struct {
	Name  string
	cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Name, e.cause)
}

func (e *FieldError) Unwrap() error { return e.cause }

// Fields is the verbatim field mapping of a record, as decoded from the
// dataset. Values hold whatever the codec produced for the underlying
// JSON (string, float64, json.Number, bool, nil, []any, map[string]any).
//
// Fields are never mutated after load; treat the map as read-only.
type Fields map[string]any

// Has reports whether the field exists.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Get returns the raw field value, or a *FieldError if absent.
func (f Fields) Get(name string) (any, error) {
	v, ok := f[name]
	if !ok {
		return nil, &FieldError{Name: name, cause: ErrFieldNotFound}
	}
	return v, nil
}

// String returns the field as a string.
func (f Fields) String(name string) (string, error) {
	v, err := f.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Name: name, cause: fmt.Errorf("not a string (got %T)", v)}
	}
	return s, nil
}

// Int returns the field as an int64.
//
// JSON codecs decode numbers as float64 or json.Number depending on
// configuration; both are accepted, as are native integer types.
func (f Fields) Int(name string) (int64, error) {
	v, err := f.Get(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &FieldError{Name: name, cause: err}
		}
		return i, nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, &FieldError{Name: name, cause: fmt.Errorf("not an integer (got %T)", v)}
	}
}

// Float returns the field as a float64.
func (f Fields) Float(name string) (float64, error) {
	v, err := f.Get(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0, &FieldError{Name: name, cause: err}
		}
		return x, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, &FieldError{Name: name, cause: fmt.Errorf("not a number (got %T)", v)}
	}
}

// Bool returns the field as a bool.
func (f Fields) Bool(name string) (bool, error) {
	v, err := f.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &FieldError{Name: name, cause: fmt.Errorf("not a bool (got %T)", v)}
	}
	return b, nil
}
