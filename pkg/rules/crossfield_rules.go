package rules

import (
	"errors"
	"fmt"
)

// Match fails when the value is not strictly equal to the named sibling
// field's value in the snapshot. The sibling is read on every evaluation, so
// the rule tracks the other field as it changes. Typical use is password
// confirmation:
//
//	rules.RuleSet{
//	    "password": {rules.Required(), rules.StrongPassword()},
//	    "confirm":  {rules.Required(), rules.Match("password", "passwords do not match")},
//	}
func Match(field string, msg ...string) Validator {
	m := message(fmt.Sprintf("must match %s", field), msg)
	return func(value any, values Values) error {
		if value != values[field] {
			return errors.New(m)
		}
		return nil
	}
}
