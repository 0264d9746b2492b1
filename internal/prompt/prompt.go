// Package prompt collects the sign-up form on a terminal and validates it
// with the same rules as the web form.
package prompt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/signup/modules/signup"
	"github.com/dmitrymomot/signup/pkg/logger"
)

// NoGenderLabel is the select option that leaves gender unanswered.
const NoGenderLabel = "선택 안 함"

// Prompter asks for every field until the submission is valid.
type Prompter struct {
	driver      Driver
	log         *slog.Logger
	maxAttempts int
}

type Option func(*Prompter)

func WithLogger(log *slog.Logger) Option {
	return func(p *Prompter) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMaxAttempts bounds the number of submissions. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

func New(driver Driver, opts ...Option) *Prompter {
	p := &Prompter{
		driver: driver,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run prompts until the values pass validation and returns them. Answers to
// non-password fields are offered as defaults on the next attempt.
func (p *Prompter) Run(ctx context.Context) (signup.Values, error) {
	var prev signup.Values
	for attempt := 1; p.maxAttempts == 0 || attempt <= p.maxAttempts; attempt++ {
		values, err := p.collect(ctx, prev)
		if err != nil {
			return nil, err
		}

		res := signup.Validate(values)
		if res.OK() {
			p.log.InfoContext(ctx, "sign-up form accepted", logger.Event("validation_passed"))
			if err := p.driver.Info(ctx, signup.SuccessNotice); err != nil {
				return nil, err
			}
			return values, nil
		}

		p.log.DebugContext(ctx, "sign-up form rejected",
			logger.Event("validation_failed"),
			logger.Fields(res.Fields()),
			slog.Int("attempt", attempt),
		)
		if err := p.report(ctx, res.Messages()); err != nil {
			return nil, err
		}
		prev = values
	}
	return nil, ErrTooManyAttempts
}

func (p *Prompter) collect(ctx context.Context, prev signup.Values) (signup.Values, error) {
	values := make(signup.Values, len(signup.Fields))

	for _, field := range []string{signup.FieldName, signup.FieldEmail} {
		v, err := p.driver.Input(ctx, InputConfig{
			Message: signup.Label(field),
			Default: prev.Get(field),
		})
		if err != nil {
			return nil, err
		}
		values[field] = v
	}

	for _, field := range []string{signup.FieldPassword, signup.FieldRePassword} {
		v, err := p.driver.Password(ctx, InputConfig{Message: signup.Label(field)})
		if err != nil {
			return nil, err
		}
		values[field] = v
	}

	birth, err := p.driver.Input(ctx, InputConfig{
		Message: signup.Label(signup.FieldBirth),
		Default: prev.Get(signup.FieldBirth),
		Help:    "YYYY-MM-DD",
	})
	if err != nil {
		return nil, err
	}
	values[signup.FieldBirth] = birth

	options := make([]string, 0, len(signup.GenderChoices)+1)
	defaultIdx := len(signup.GenderChoices)
	for i, c := range signup.GenderChoices {
		options = append(options, c.Label)
		if prev.Get(signup.FieldGender) == c.Value {
			defaultIdx = i
		}
	}
	options = append(options, NoGenderLabel)

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      signup.Label(signup.FieldGender),
		Options:      options,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return nil, err
	}
	if idx >= 0 && idx < len(signup.GenderChoices) {
		values[signup.FieldGender] = signup.GenderChoices[idx].Value
	}

	return values, nil
}

// report prints one line per failing field, in form order.
func (p *Prompter) report(ctx context.Context, msgs signup.Messages) error {
	for _, field := range signup.Fields {
		if !msgs.Has(field) {
			continue
		}
		if err := p.driver.Info(ctx, fmt.Sprintf("%s: %s", signup.Label(field), msgs.Get(field))); err != nil {
			return err
		}
	}
	return nil
}
