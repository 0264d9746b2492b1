// Package logger builds *slog.Logger instances for the sign-up service.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout). WithEnvironment switches to the preset for development,
// staging or production and stamps every record with service and env
// attributes. Request-scoped values are attached by context extractors, which
// run on every log call:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "signup"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "submission accepted", logger.Component("signup"))
//
// The attr helpers (Error, RequestID, Component, Event, Fields) keep attribute
// keys consistent across packages.
package logger
