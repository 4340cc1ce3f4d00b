// Package validation checks request payloads field by field and reports every failing
// field instead of stopping at the first one.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
	PasswordMinLength = 8
	// PasswordMaxBytes is the bcrypt input limit; it counts bytes, not characters.
	PasswordMaxBytes = 72
	StudentMaxAge     = 150
)

// ErrInvalid is matched with errors.Is against any non-empty Errors value.
var ErrInvalid = errors.New("validation failed")

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the result of a validation function. A nil or empty Errors means the payload
// passed every check.
type Errors []FieldError

// Error returns the message of the first failing field.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

func (e Errors) Unwrap() error {
	return ErrInvalid
}

// Err converts the result into an error, returning nil when there is nothing to report.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e *Errors) add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *Errors) requireString(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		e.add(field, "%q is required", field)
		return false
	}
	return true
}

func (e *Errors) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min {
		e.add(field, "%q length must be at least %d characters long", field, min)
	}
	if max > 0 && n > max {
		e.add(field, "%q length must be less than or equal to %d characters long", field, max)
	}
}

// Credentials validates a registration payload.
func Credentials(username, password string) Errors {
	var errs Errors
	if errs.requireString("username", username) {
		errs.length("username", username, UsernameMinLength, UsernameMaxLength)
	}
	if password == "" {
		errs.add("password", "%q is required", "password")
	} else {
		errs.length("password", password, PasswordMinLength, 0)
		if len(password) > PasswordMaxBytes {
			errs.add("password", "%q length must be less than or equal to %d characters long", "password", PasswordMaxBytes)
		}
	}
	return errs
}

// KYC validates a KYC submission.
func KYC(document string) Errors {
	var errs Errors
	errs.requireString("document", document)
	return errs
}

// Post validates a post submission.
func Post(content string) Errors {
	var errs Errors
	errs.requireString("content", content)
	return errs
}

// Student validates a directory student.
func Student(name string, age int) Errors {
	var errs Errors
	errs.requireString("name", name)
	if age < 0 || age > StudentMaxAge {
		errs.add("age", "%q must be between 0 and %d", "age", StudentMaxAge)
	}
	return errs
}

// BoardPost validates a directory board post.
func BoardPost(userID int64, content string) Errors {
	var errs Errors
	if userID <= 0 {
		errs.add("userId", "%q must be a positive number", "userId")
	}
	errs.requireString("content", content)
	return errs
}
