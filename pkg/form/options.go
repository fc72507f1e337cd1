package form

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Option is a functional option for configuring a Form.
type Option func(*Form)

// WithInitialValues sets the starting value map. Reset restores exactly
// these values.
func WithInitialValues(values rules.Values) Option {
	return func(f *Form) {
		f.initial = values.Clone()
	}
}

// WithRules sets the per-field rule sequences. The rule set is fixed for the
// lifetime of the form.
func WithRules(ruleSet rules.RuleSet) Option {
	return func(f *Form) {
		f.ruleSet = ruleSet
	}
}

// WithValidateOnChange toggles re-validation of a field on every SetValue.
// Enabled by default.
func WithValidateOnChange(enabled bool) Option {
	return func(f *Form) {
		f.validateOnChange = enabled
	}
}

// WithValidateOnBlur toggles validation of a field on HandleBlur. Enabled by
// default.
func WithValidateOnBlur(enabled bool) Option {
	return func(f *Form) {
		f.validateOnBlur = enabled
	}
}

// WithLogger sets a logger for debug-level event tracing. Nil loggers are
// ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}
