package form

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Form owns the mutable state of one form instance: current values, the
// error-message cache, touched flags, and the submitted flag. All mutation
// goes through its methods; accessors hand out copies.
type Form struct {
	initial rules.Values
	values  rules.Values
	ruleSet rules.RuleSet

	errors    Errors
	touched   map[string]bool
	submitted bool

	validateOnChange bool
	validateOnBlur   bool

	log *slog.Logger
}

// New creates a form controller. Validation on change and on blur are both
// enabled unless switched off via options.
func New(opts ...Option) *Form {
	f := &Form{
		initial:          rules.Values{},
		ruleSet:          rules.RuleSet{},
		errors:           Errors{},
		touched:          make(map[string]bool),
		validateOnChange: true,
		validateOnBlur:   true,
	}

	for _, opt := range opts {
		opt(f)
	}

	f.values = f.initial.Clone()

	if f.log == nil {
		f.log = slog.New(slog.DiscardHandler)
	}

	return f
}

// SetValue overwrites the field's value. Any recorded error for the field is
// cleared before re-validation, so a stale message never outlives the
// keystroke that invalidated it; with validate-on-change enabled the error
// is reinstated immediately when the new value still fails.
func (f *Form) SetValue(field string, value any) {
	f.values[field] = value

	// Optimistic clear first, then re-derive.
	delete(f.errors, field)

	if f.validateOnChange {
		if err := f.ValidateField(field); err != nil {
			f.errors[field] = err.Error()
		}
	}

	f.log.Debug("field changed", "field", field)
}

// SetError records or clears a field error directly, bypassing rule
// evaluation. An empty message clears. Intended for externally produced
// errors, e.g. server-side validation results.
func (f *Form) SetError(field, message string) {
	if message == "" {
		delete(f.errors, field)
		return
	}
	f.errors[field] = message
}

// SetTouched marks or unmarks a field as touched without validating it.
func (f *Form) SetTouched(field string, touched bool) {
	if touched {
		f.touched[field] = true
		return
	}
	delete(f.touched, field)
}

// ValidateField evaluates the field's rule sequence against the current
// values, short-circuiting on the first failure. It never mutates the error
// map; callers decide what to do with the result. Fields without rules
// always pass.
func (f *Form) ValidateField(field string) error {
	return f.ruleSet[field].Eval(f.values[field], f.values)
}

// Validate evaluates every ruled field and replaces the whole error map in
// one mutation. Returns true iff no field produced an error.
func (f *Form) Validate() bool {
	next := make(Errors, len(f.ruleSet))
	for field := range f.ruleSet {
		if err := f.ValidateField(field); err != nil {
			next[field] = err.Error()
		}
	}
	f.errors = next
	return len(next) == 0
}

// IsValid re-runs every ruled field's sequence against the current values.
// It reads nothing from the error cache, so it stays correct even when
// on-change and on-blur validation are disabled and the cache lags.
func (f *Form) IsValid() bool {
	for field := range f.ruleSet {
		if err := f.ValidateField(field); err != nil {
			return false
		}
	}
	return true
}

// Reset restores the initial values and clears errors, touched flags, and
// the submitted flag. Equivalent to a fresh instance.
func (f *Form) Reset() {
	f.values = f.initial.Clone()
	f.errors = Errors{}
	f.touched = make(map[string]bool)
	f.submitted = false
}

// ResetField restores one field to its initial value, or removes it when no
// initial value was recorded, and clears its error and touched flag.
func (f *Form) ResetField(field string) {
	if v, ok := f.initial[field]; ok {
		f.values[field] = v
	} else {
		delete(f.values, field)
	}
	delete(f.errors, field)
	delete(f.touched, field)
}

// Values returns a copy of the current value snapshot.
func (f *Form) Values() rules.Values {
	return f.values.Clone()
}

// Value returns the current value of one field.
func (f *Form) Value(field string) any {
	return f.values[field]
}

// Errors returns a copy of the current error map.
func (f *Form) Errors() Errors {
	return maps.Clone(f.errors)
}

// Error returns the current error message for a field, or "".
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// Touched reports whether the field has been touched.
func (f *Form) Touched(field string) bool {
	return f.touched[field]
}

// TouchedFields returns the touched field names in sorted order.
func (f *Form) TouchedFields() []string {
	return slices.Sorted(maps.Keys(f.touched))
}

// Submitted reports whether submit has been attempted since the last reset.
func (f *Form) Submitted() bool {
	return f.submitted
}

// Fields returns the sorted union of fields that have an initial value and
// fields that carry rules.
func (f *Form) Fields() []string {
	seen := make(map[string]struct{}, len(f.initial)+len(f.ruleSet))
	for field := range f.initial {
		seen[field] = struct{}{}
	}
	for field := range f.ruleSet {
		seen[field] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
