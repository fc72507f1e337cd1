package rules

import (
	"errors"
	"regexp"
)

// emailRegex checks the common local@domain.tld shape without whitespace.
// Deliberately not RFC 5322: the goal is catching obvious typos, not
// arbitrating exotic-but-technically-legal addresses.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Pattern fails when a non-empty stringified value does not match re.
// Empty values pass.
func Pattern(re *regexp.Regexp, msg ...string) Validator {
	m := message("invalid format", msg)
	return func(value any, _ Values) error {
		s := stringify(value)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return errors.New(m)
		}
		return nil
	}
}

// Email fails when a non-empty value does not look like an email address.
// Empty values pass.
func Email(msg ...string) Validator {
	return Pattern(emailRegex, message("must be a valid email address", msg))
}
