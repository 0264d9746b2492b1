package validator

import (
	"regexp"
	"strings"
)

// emailRegex accepts the address shapes browsers and most form libraries
// accept: a dotted local part, one or more domain labels and an alphabetic
// TLD of at least two letters. Leading dots and ".." are rejected separately
// because RE2 has no lookahead.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

// ValidEmail validates email address syntax.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" || strings.HasPrefix(value, ".") || strings.Contains(value, "..") {
				return false
			}
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
