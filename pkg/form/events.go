package form

import (
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// InputType tells the change handler how to coerce a raw input value.
type InputType string

const (
	// InputText keeps the raw value as a string. Zero value of InputType
	// behaves the same, so untyped fields default to text.
	InputText InputType = "text"
	// InputNumber coerces to float64; the empty string stays an empty-string
	// sentinel so Required can still distinguish "not filled in".
	InputNumber InputType = "number"
	// InputCheckbox coerces to bool.
	InputCheckbox InputType = "checkbox"
)

// HandleChange coerces a raw input value per the field's input type and
// stores it via SetValue.
func (f *Form) HandleChange(field, raw string, typ InputType) {
	f.SetValue(field, coerceInput(raw, typ))
}

// HandleBlur marks the field touched and, when validate-on-blur is enabled,
// writes the field's validation result into the error map (setting or
// clearing it).
func (f *Form) HandleBlur(field string) {
	f.touched[field] = true

	if !f.validateOnBlur {
		return
	}

	if err := f.ValidateField(field); err != nil {
		f.errors[field] = err.Error()
	} else {
		delete(f.errors, field)
	}
}

// HandleSubmit marks every ruled field touched, sets the submitted flag, and
// runs a full validation pass. The callback is invoked with a snapshot of
// the current values only when the form is clean; the return value reports
// that same validity.
func (f *Form) HandleSubmit(onValid func(rules.Values)) bool {
	for field := range f.ruleSet {
		f.touched[field] = true
	}
	f.submitted = true

	ok := f.Validate()
	if !ok {
		f.log.Debug("submit rejected", "errors", len(f.errors))
		return false
	}

	if onValid != nil {
		onValid(f.Values())
	}
	return true
}

// coerceInput translates a raw string from an input element into the value
// stored in the snapshot.
func coerceInput(raw string, typ InputType) any {
	switch typ {
	case InputCheckbox:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return false
		}
		return b
	case InputNumber:
		if raw == "" {
			return ""
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// Unparsable input stays a string: Required sees it as present
			// and the numeric rules treat it as passing.
			return raw
		}
		return n
	default:
		return raw
	}
}
