package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Message    string
	StatusCode int
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the error document. When nil the handler writes a
	// plain-text body.
	ErrorPage func(ErrorPageParams) TemplComponent
}

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

const genericErrorMessage = "An error occurred processing your request"

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{StatusCode: http.StatusInternalServerError}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidJSON):
		info.StatusCode = http.StatusBadRequest
	}

	if info.StatusCode >= http.StatusInternalServerError {
		info.Message = genericErrorMessage
		info.LogLevel = slog.LevelError
	} else {
		info.Message = http.StatusText(info.StatusCode)
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns an ErrorHandler that logs the error and writes an
// error page. Server errors never expose err's text to the client.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		// Datastar patches need a target element; a full error document has none.
		if cfg.ErrorPage == nil || IsDataStar(r) {
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		page := cfg.ErrorPage(ErrorPageParams{
			Message:    info.Message,
			StatusCode: info.StatusCode,
			RequestID:  requestid.FromContext(r.Context()),
		})
		if renderErr := Templ(page, WithStatus(info.StatusCode)).Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
			http.Error(w, genericErrorMessage, http.StatusInternalServerError)
		}
	}
}
