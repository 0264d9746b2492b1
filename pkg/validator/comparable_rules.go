package validator

// EqualStrings is a cross-field rule: it fails when value differs from other.
// The failure is reported on field, which is usually the confirmation input.
func EqualStrings(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "values do not match",
			TranslationKey: "validation.mismatch",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
