// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener before returning control to start hooks, so a port
// conflict surfaces as ErrStart instead of a background failure. It blocks
// until the context is cancelled, SIGINT/SIGTERM arrives, or the server fails,
// and then drains in-flight requests within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
