// Command signup serves the sign-up form over HTTP.
//
// Configuration comes from the environment (and an optional .env file):
//
//	APP_ENV      development | staging | production (default development)
//	APP_NAME     service name attached to every log record (default signup)
//	LOG_LEVEL    debug | info | warn | error, overrides the APP_ENV preset
//	HTTP_ADDR    listen address (default :8080)
//	TRUSTED_IP_HEADERS  comma-separated proxy headers to read the client IP from
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signup/modules/signup"
	"github.com/dmitrymomot/signup/pkg/clientip"
	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/httpserver"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/requestid"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"signup"`
	LogLevel *slog.Level `env:"LOG_LEVEL"`
	HTTP     httpserver.Config

	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	slog.SetDefault(log)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger, addr string) {
			l.Info("server started", slog.String("addr", addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(context.Background(), newRouter(cfg, log)); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != nil {
		opts = append(opts, logger.WithLevel(*cfg.LogLevel))
	}
	return logger.New(opts...)
}

func newRouter(cfg appConfig, log *slog.Logger) http.Handler {
	svc := signup.NewService(signup.WithLogger(log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(clientip.WithTrustedHeaders(cfg.TrustedIPHeaders...)))
	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Mount("/", svc.Handle())
	return r
}
