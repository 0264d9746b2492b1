package signup

// Violation is a failed rule: the field it belongs to and the message to show.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of Validate. The zero value is a success.
type Result struct {
	violations []Violation
}

func (r Result) OK() bool {
	return len(r.violations) == 0
}

// Violations returns at most one violation per field, in rule order.
func (r Result) Violations() []Violation {
	if len(r.violations) == 0 {
		return nil
	}
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Fields returns the names of the failing fields in rule order.
func (r Result) Fields() []string {
	if len(r.violations) == 0 {
		return nil
	}
	fields := make([]string, 0, len(r.violations))
	for _, v := range r.violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// Messages returns the error message map. It is empty on success.
func (r Result) Messages() Messages {
	msgs := make(Messages, len(r.violations))
	for _, v := range r.violations {
		if _, ok := msgs[v.Field]; !ok {
			msgs[v.Field] = v.Message
		}
	}
	return msgs
}

// Messages maps a field to the single message displayed next to it.
// A field without a violation has no key.
type Messages map[string]string

func (m Messages) Get(field string) string {
	return m[field]
}

func (m Messages) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Invalid returns the aria-invalid attribute value for field.
func (m Messages) Invalid(field string) string {
	if m.Has(field) {
		return "true"
	}
	return "false"
}
