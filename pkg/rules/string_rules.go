package rules

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Required fails for nil and empty-string values. Zero and false are real
// values and pass; ownership of "is this filled in" stays with this rule so
// the other rules can pass on empty input.
func Required(msg ...string) Validator {
	m := message("field is required", msg)
	return func(value any, _ Values) error {
		if isEmpty(value) {
			return errors.New(m)
		}
		return nil
	}
}

// MinLength fails when the stringified value is shorter than min characters.
// Empty values pass; pair with Required to also reject blanks.
func MinLength(min int, msg ...string) Validator {
	m := message(fmt.Sprintf("must be at least %d characters long", min), msg)
	return func(value any, _ Values) error {
		s := stringify(value)
		if s == "" {
			return nil
		}
		if utf8.RuneCountInString(s) < min {
			return errors.New(m)
		}
		return nil
	}
}

// MaxLength fails when the stringified value is longer than max characters.
// Empty values pass.
func MaxLength(max int, msg ...string) Validator {
	m := message(fmt.Sprintf("must be at most %d characters long", max), msg)
	return func(value any, _ Values) error {
		s := stringify(value)
		if s == "" {
			return nil
		}
		if utf8.RuneCountInString(s) > max {
			return errors.New(m)
		}
		return nil
	}
}
