// Package validator provides small, composable validation rules for form input.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Rules are evaluated in order by Apply, which collects every
// failure into a ValidationErrors value. ValidationErrors satisfies the error
// interface, so callers can return it directly and recover it later with
// ExtractValidationErrors.
//
// Every rule carries a default English message and a translation key. Forms
// that need their own wording replace the message with Rule.WithMessage:
//
//	err := validator.Apply(
//		validator.MinLenString("name", name, 1).WithMessage("name is required"),
//		validator.ValidEmail("email", email),
//		validator.EqualStrings("confirm", confirm, password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		messages := verrs.First() // one message per field, in rule order
//		_ = messages
//	}
//
// String lengths are measured in runes, not bytes, so multi-byte input such as
// Hangul counts one per character.
//
// The package holds no state; rules are plain values and safe for concurrent use.
package validator
