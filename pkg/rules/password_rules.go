package rules

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// passwordCheck pairs a predicate with the message reported when it is the
// first unmet requirement.
type passwordCheck struct {
	ok  func(string) bool
	msg string
}

// strongPasswordChecks run in a fixed order; the first unmet check owns the
// error message.
var strongPasswordChecks = []passwordCheck{
	{func(s string) bool { return utf8.RuneCountInString(s) >= 8 }, "must be at least 8 characters long"},
	{uppercaseRegex.MatchString, "must contain an uppercase letter"},
	{lowercaseRegex.MatchString, "must contain a lowercase letter"},
	{digitRegex.MatchString, "must contain a digit"},
	{specialCharRegex.MatchString, "must contain a special character"},
}

// StrongPassword fails on the first unmet of: length >= 8, an uppercase
// letter, a lowercase letter, a digit, a special character, checked in that
// order. A custom message, when given, replaces whichever check fails. Empty
// values pass.
func StrongPassword(msg ...string) Validator {
	return func(value any, _ Values) error {
		s := stringify(value)
		if s == "" {
			return nil
		}
		for _, check := range strongPasswordChecks {
			if !check.ok(s) {
				return errors.New(message(check.msg, msg))
			}
		}
		return nil
	}
}
