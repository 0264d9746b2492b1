// Command signup-cli asks for the sign-up form on the terminal and repeats
// the questions until every field is valid.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dmitrymomot/signup/internal/prompt"
	"github.com/dmitrymomot/signup/modules/signup"
	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/logger"
)

type cliConfig struct {
	Env         string     `env:"APP_ENV" envDefault:"development"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"warn"`
	MaxAttempts int        `env:"SIGNUP_MAX_ATTEMPTS" envDefault:"0"`
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Logs go to stderr so they do not interleave with the prompts.
	log := logger.New(
		logger.WithEnvironment(cfg.Env, "signup-cli"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
	)

	p := prompt.New(prompt.NewSurveyDriver(os.Stdout),
		prompt.WithLogger(log),
		prompt.WithMaxAttempts(cfg.MaxAttempts),
	)

	values, err := p.Run(ctx)
	if err != nil {
		return err
	}

	for _, field := range signup.Fields {
		if field == signup.FieldPassword || field == signup.FieldRePassword {
			continue
		}
		fmt.Printf("%s: %s\n", signup.Label(field), values.Get(field))
	}
	return nil
}
