// Package rules provides composable, pure validation rules for form fields.
//
// Every rule constructor returns a Validator: a stateless function of the
// field's current value and a read-only snapshot of all field values. A
// Validator returns nil when the value passes and an error carrying the
// user-facing message when it does not. Rules are combined per field as an
// ordered Sequence; evaluation short-circuits on the first failure, so the
// earliest failing rule owns the field's error message.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `format_rules.go`, `password_rules.go`,
// `crossfield_rules.go`). Constructors close over their parameters only;
// cross-field rules such as Match read sibling values from the snapshot
// argument, never from closures, which keeps them testable in isolation.
// There is no hidden global state: the package is stateless and
// goroutine-safe.
//
// # Usage
//
//	seq := rules.Sequence{
//	    rules.Required(),
//	    rules.Email(),
//	}
//	if err := seq.Eval(value, snapshot); err != nil {
//	    // err.Error() is the message for the first failing rule
//	}
//
// Emptiness is owned by Required: length, format, numeric, and password rules
// all pass on empty values so that an optional field is not rejected for
// being blank.
package rules
