// Package form implements a synchronous form-state controller: field values,
// per-field errors, touch state, and submission status, driven by the rule
// sequences from pkg/rules.
//
// A Form is created once per form instance with initial values and a rule
// set, and mutated only through its operations. The error map is an advisory
// cache: it is rewritten by Validate, optimistically cleared and re-derived
// by SetValue, and bypassed entirely by IsValid, which re-runs every ruled
// field's sequence on each call and therefore can never go stale.
//
// # Usage
//
//	f := form.New(
//	    form.WithInitialValues(rules.Values{"email": "", "password": ""}),
//	    form.WithRules(rules.RuleSet{
//	        "email":    {rules.Required(), rules.Email()},
//	        "password": {rules.Required(), rules.MinLength(8)},
//	    }),
//	)
//	f.HandleChange("email", "a@b.co", form.InputText)
//	f.HandleBlur("email")
//	ok := f.HandleSubmit(func(values rules.Values) {
//	    // only reached when every field validates
//	})
//
// The controller is single-goroutine by design: it is meant to live inside
// one request or one UI event loop, where every operation runs to completion
// before the next event arrives. It performs no I/O and holds no locks.
package form
