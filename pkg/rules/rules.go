package rules

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Values is a snapshot of all field values in a form, keyed by field name.
// It is passed to every Validator so cross-field rules can read sibling
// values without capturing them in closures.
type Values map[string]any

// Clone returns a shallow copy of the snapshot. Field values are scalars
// (string, number, bool), so a shallow copy is a full copy.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// String returns the field's value coerced to a string, or "" when the field
// is absent or nil.
func (v Values) String(field string) string {
	return stringify(v[field])
}

// Number returns the field's value coerced to a float64 and whether the
// coercion succeeded.
func (v Values) Number(field string) (float64, bool) {
	return toNumber(v[field])
}

// Bool returns the field's value as a bool, or false for anything that is
// not a bool.
func (v Values) Bool(field string) bool {
	b, _ := v[field].(bool)
	return b
}

// Validator checks a single field value against one rule. A nil return means
// the value passes; a non-nil error carries the user-facing message.
// Validators are pure: no side effects, no I/O, no retained state.
type Validator func(value any, values Values) error

// Sequence is an ordered list of Validators for one field.
type Sequence []Validator

// Eval runs the sequence against the value, short-circuiting on the first
// failing rule. An empty sequence always passes.
func (s Sequence) Eval(value any, values Values) error {
	for _, validate := range s {
		if validate == nil {
			continue
		}
		if err := validate(value, values); err != nil {
			return err
		}
	}
	return nil
}

// RuleSet maps field names to their rule sequences.
type RuleSet map[string]Sequence

// message returns the first non-empty custom message, falling back to the
// rule's default.
func message(def string, custom []string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return def
}

// isEmpty reports whether a value counts as "not provided". Zero and false
// are real values; only nil and the empty string are empty.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// toNumber attempts numeric coercion. Numeric types convert directly,
// strings are parsed, everything else (including bool) is non-numeric.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
