// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already filled by the
// configured binders, and returns a Response that renders itself:
//
//	type SignUpRequest struct {
//		Name *string `form:"name"`
//	}
//
//	h := handler.Wrap(func(ctx handler.Context, req SignUpRequest) handler.Response {
//		return handler.Templ(views.Page(req))
//	},
//		handler.WithBinders[SignUpRequest](binder.Form()),
//		handler.WithErrorHandler[SignUpRequest](handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})),
//	)
//
// Binders run in order; a binder returning binder.ErrBinderNotApplicable is
// skipped, so one handler can serve both the GET page and the POST submit.
//
// # Responses
//
// Templ and TemplPartial render templ components. Regular requests get the
// full HTML document with the configured status; Datastar requests get the
// partial component as a server-sent element patch. JSON encodes a value with
// a status code.
//
// # Errors
//
// Binding and rendering failures go to the ErrorHandler. NewErrorHandler
// classifies them (HTTPError, binder errors, everything else as 500), logs
// them with slog and writes an error page or a plain-text body.
package handler
