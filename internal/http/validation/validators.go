// Package validation provides string validators and an ordered rule collector
// for request validation. Messages accumulate in rule-declaration order so the
// same invalid input always produces the same message list.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "github.com/jobdesk/jobdesk-api/internal/errors"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty and does not exceed maxLen characters.
// Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Optional validates that an optional field does not exceed maxLen characters if provided.
// Uses rune count for proper Unicode support.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// RuleSet accumulates validation messages in the order rules are declared.
type RuleSet struct {
	messages []string
}

// NewRuleSet creates an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Field validates a string field with one or more validators.
// It stops at the first error for the field.
func (rs *RuleSet) Field(value string, validators ...Validator) *RuleSet {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			rs.messages = append(rs.messages, msg)
			break
		}
	}
	return rs
}

// Check records message when ok is false.
func (rs *RuleSet) Check(ok bool, message string) *RuleSet {
	if !ok {
		rs.messages = append(rs.messages, message)
	}
	return rs
}

// Checkf records a formatted message when ok is false.
func (rs *RuleSet) Checkf(ok bool, format string, args ...any) *RuleSet {
	if !ok {
		rs.messages = append(rs.messages, fmt.Sprintf(format, args...))
	}
	return rs
}

// Add unconditionally records a message.
func (rs *RuleSet) Add(message string) *RuleSet {
	rs.messages = append(rs.messages, message)
	return rs
}

// Valid reports whether no rule has failed.
func (rs *RuleSet) Valid() bool {
	return len(rs.messages) == 0
}

// Messages returns the accumulated messages in declaration order.
func (rs *RuleSet) Messages() []string {
	return rs.messages
}

// Err returns nil when all rules passed, or a validation AppError carrying
// the ordered message list.
func (rs *RuleSet) Err() error {
	if len(rs.messages) == 0 {
		return nil
	}
	return apperrors.ValidationMessages(rs.messages)
}
