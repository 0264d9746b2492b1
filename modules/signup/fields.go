package signup

import "net/url"

// Declared form fields.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRePassword = "rePassword"
	FieldBirth      = "birth"
	FieldGender     = "gender"
)

// Fields lists the declared fields in form order.
var Fields = []string{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldRePassword,
	FieldBirth,
	FieldGender,
}

// Gender values accepted by the gender radio group.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

var genders = []string{GenderMale, GenderFemale}

// Choice is a selectable value with its display label.
type Choice struct {
	Value string
	Label string
}

// GenderChoices lists the gender radio options in display order.
var GenderChoices = []Choice{
	{Value: GenderMale, Label: "남자"},
	{Value: GenderFemale, Label: "여자"},
}

var labels = map[string]string{
	FieldName:       "이름",
	FieldEmail:      "이메일",
	FieldPassword:   "비밀번호",
	FieldRePassword: "비밀번호 재확인",
	FieldBirth:      "생년월일",
	FieldGender:     "성별",
}

// Label returns the display label of a declared field, or field itself.
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// Values holds the raw string values of one submission, keyed by field name.
// A field that was not submitted has no key.
type Values map[string]string

// Get returns the value of field, or "" when it is absent.
func (v Values) Get(field string) string {
	return v[field]
}

func (v Values) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Extract builds a Values set from a parsed form. Only declared fields that
// are present in the form are included; for repeated keys the first value
// wins.
func Extract(form url.Values) Values {
	values := make(Values, len(Fields))
	for _, field := range Fields {
		if vs, ok := form[field]; ok && len(vs) > 0 {
			values[field] = vs[0]
		}
	}
	return values
}

// Request is the bound form or JSON body of a submission. Nil pointers mark
// fields that were not submitted, such as an unselected gender radio group.
type Request struct {
	Name       *string `form:"name" json:"name"`
	Email      *string `form:"email" json:"email"`
	Password   *string `form:"password" json:"password"`
	RePassword *string `form:"rePassword" json:"rePassword"`
	Birth      *string `form:"birth" json:"birth"`
	Gender     *string `form:"gender" json:"gender"`
}

// Values converts the request into a Values set.
func (r Request) Values() Values {
	values := make(Values, len(Fields))
	set := func(field string, v *string) {
		if v != nil {
			values[field] = *v
		}
	}
	set(FieldName, r.Name)
	set(FieldEmail, r.Email)
	set(FieldPassword, r.Password)
	set(FieldRePassword, r.RePassword)
	set(FieldBirth, r.Birth)
	set(FieldGender, r.Gender)
	return values
}
