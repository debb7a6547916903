// Package validation holds the form field rules shared by every action. Each
// validator accepts any submitted value and returns an empty string when the
// value is acceptable, or the message to show next to the field otherwise.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ServicePlaceholder is the first option of the service select box.
const ServicePlaceholder = "- Select your service -"

type Validator func(v any) string

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func minLength(n int, message string) Validator {
	return func(v any) string {
		s, ok := asString(v)
		if !ok || utf8.RuneCountInString(s) < n {
			return message
		}
		return ""
	}
}

func maxLength(n int, message string) Validator {
	return func(v any) string {
		if s, _ := asString(v); utf8.RuneCountInString(s) > n {
			return message
		}
		return ""
	}
}

// maxBytes caps the encoded size rather than the character count.
func maxBytes(n int, message string) Validator {
	return func(v any) string {
		if s, _ := asString(v); len(s) > n {
			return message
		}
		return ""
	}
}

// chain returns the message of the first failing validator.
func chain(validators ...Validator) Validator {
	return func(v any) string {
		for _, check := range validators {
			if msg := check(v); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

var (
	Username = chain(
		minLength(3, "Username must be at least 3 characters long"),
		maxLength(100, "Username must be at most 100 characters long"))
	Password = chain(
		minLength(6, "Password must be at least 6 characters long"),
		maxBytes(MaxPasswordBytes, "Password is too long"))
	ServiceName = chain(
		minLength(2, "Service name must be at least 2 characters long"),
		maxLength(100, "Service name must be at most 100 characters long"))
	Product = chain(
		minLength(3, "Product must be at least 3 characters long"),
		maxLength(100, "Product must be at most 100 characters long"))
	Status = chain(
		minLength(3, "Status must be at least 3 characters long"),
		maxLength(100, "Status must be at most 100 characters long"))
	Role = chain(
		minLength(2, "Role must be at least 2 characters long"),
		maxLength(100, "Role must be at most 100 characters long"))
	Title = chain(
		minLength(3, "Title must be at least 3 characters long."),
		maxLength(200, "Title must be at most 200 characters long."))
	Description = chain(
		minLength(5, "Description must be at least 5 characters long."),
		maxLength(5000, "Description must be at most 5000 characters long."))
	Text = chain(
		minLength(5, "Text must be at least 5 characters long."),
		maxLength(5000, "Text must be at most 5000 characters long."))
)

func Email(v any) string {
	s, ok := asString(v)
	if !ok || utf8.RuneCountInString(s) < 3 || !strings.Contains(s, "@") {
		return "Email address is not valid"
	}
	if utf8.RuneCountInString(s) > 255 {
		return "Email address is too long"
	}
	return ""
}

func Service(v any) string {
	s, ok := asString(v)
	if !ok || s == "" || s == ServicePlaceholder {
		return "A service must be selected"
	}
	return ""
}

func SelectedProduct(v any) string {
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		return "A product must be selected"
	}
	return ""
}

func SelectedStatus(v any) string {
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		return "A status must be selected"
	}
	return ""
}

// OnlyDigits reports whether s is non-empty and made of decimal digits only.
func OnlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// NotOnlyDigits wraps next and additionally rejects values made of digits only.
func NotOnlyDigits(field string, next Validator) Validator {
	return func(v any) string {
		if msg := next(v); msg != "" {
			return msg
		}
		if s, _ := asString(v); OnlyDigits(s) {
			return fmt.Sprintf("%s cannot contain only numbers", field)
		}
		return ""
	}
}

// Rule pairs a field value with the validator that checks it.
type Rule struct {
	Value any
	Check Validator
}

// Collect runs every rule and returns the failing fields, or nil when all pass.
func Collect(rules map[string]Rule) map[string]string {
	var fieldErrors map[string]string
	for field, rule := range rules {
		if msg := rule.Check(rule.Value); msg != "" {
			if fieldErrors == nil {
				fieldErrors = make(map[string]string)
			}
			fieldErrors[field] = msg
		}
	}
	return fieldErrors
}
