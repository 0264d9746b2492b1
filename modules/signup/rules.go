package signup

import (
	"github.com/dmitrymomot/signup/pkg/validator"
)

// Messages shown to the user.
const (
	MsgNameRequired     = "이름을 입력해주세요."
	MsgEmailInvalid     = "이메일 형식이 아닙니다."
	MsgPasswordTooShort = "비밀번호는 최소 8자리 이상입니다."
	MsgPasswordTooLong  = "비밀번호는 최대 20자리 이하입니다."
	MsgGenderRequired   = "성별을 선택해주세요."
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다."
)

const (
	passwordMinLen = 8
	passwordMaxLen = 20
)

// fieldRules returns the per-field rules in evaluation order. Missing keys
// are checked as empty strings. birth has no rule.
func fieldRules(v Values) []validator.Rule {
	return []validator.Rule{
		validator.MinLenString(FieldName, v.Get(FieldName), 1).WithMessage(MsgNameRequired),
		validator.ValidEmail(FieldEmail, v.Get(FieldEmail)).WithMessage(MsgEmailInvalid),
		validator.MinLenString(FieldPassword, v.Get(FieldPassword), passwordMinLen).WithMessage(MsgPasswordTooShort),
		validator.MaxLenString(FieldPassword, v.Get(FieldPassword), passwordMaxLen).WithMessage(MsgPasswordTooLong),
		validator.InListString(FieldGender, v.Get(FieldGender), genders).WithMessage(MsgGenderRequired),
	}
}

// crossFieldRules run after every per-field rule, regardless of their outcome.
func crossFieldRules(v Values) []validator.Rule {
	return []validator.Rule{
		validator.EqualStrings(FieldRePassword, v.Get(FieldRePassword), v.Get(FieldPassword)).WithMessage(MsgPasswordMismatch),
	}
}

// Validate checks a submission. The result keeps the first violation per
// field in rule order. Validate is pure and safe for concurrent use.
func Validate(v Values) Result {
	rules := append(fieldRules(v), crossFieldRules(v)...)
	err := validator.Apply(rules...)
	if err == nil {
		return Result{}
	}

	verrs := validator.ExtractValidationErrors(err).First()
	violations := make([]Violation, 0, len(verrs))
	for _, e := range verrs {
		violations = append(violations, Violation{Field: e.Field, Message: e.Message})
	}
	return Result{violations: violations}
}
