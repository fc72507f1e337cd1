package rules

import (
	"errors"
	"fmt"
)

// Min fails when the value coerces to a number below min. Non-numeric values
// pass; Required or a numeric Pattern owns that failure.
func Min(min float64, msg ...string) Validator {
	m := message(fmt.Sprintf("must be at least %v", min), msg)
	return func(value any, _ Values) error {
		n, ok := toNumber(value)
		if !ok {
			return nil
		}
		if n < min {
			return errors.New(m)
		}
		return nil
	}
}

// Max fails when the value coerces to a number above max. Non-numeric values
// pass.
func Max(max float64, msg ...string) Validator {
	m := message(fmt.Sprintf("must be at most %v", max), msg)
	return func(value any, _ Values) error {
		n, ok := toNumber(value)
		if !ok {
			return nil
		}
		if n > max {
			return errors.New(m)
		}
		return nil
	}
}
