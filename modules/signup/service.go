package signup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/logger"
)

// SuccessHook is called with the values of every valid submission.
type SuccessHook func(ctx context.Context, values Values)

// Service serves the sign-up form over HTTP.
type Service struct {
	log          *slog.Logger
	views        Views
	action       string
	scriptURL    string
	errorHandler handler.ErrorHandler
	onSuccess    []SuccessHook
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithViews overrides the default markup. Nil view functions keep the defaults.
func WithViews(v Views) Option {
	return func(s *Service) {
		s.views = v.withDefaults()
	}
}

// WithAction sets the URL the form posts to. It must match where Handle is
// mounted. Defaults to "/".
func WithAction(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.action = path
		}
	}
}

// WithScriptURL sets the Datastar client URL. An empty URL disables it.
func WithScriptURL(url string) Option {
	return func(s *Service) {
		s.scriptURL = url
	}
}

func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		s.errorHandler = h
	}
}

// WithSuccessHook registers a hook called after a valid form submission.
func WithSuccessHook(hook SuccessHook) Option {
	return func(s *Service) {
		if hook != nil {
			s.onSuccess = append(s.onSuccess, hook)
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		log:       slog.Default(),
		views:     DefaultViews(),
		action:    "/",
		scriptURL: DatastarScriptURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage: s.views.ErrorPage,
		})
	}
	s.log = s.log.With(logger.Component("signup"))
	return s
}

// Handle returns the sign-up routes:
//
//	GET  /          empty form
//	POST /          validate a form submission and re-render the form
//	POST /validate  validate a JSON body
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	// Form binder is skipped for GET.
	signUp := handler.Wrap(s.signUp,
		handler.WithBinders[Request](binder.Form()),
		handler.WithErrorHandler[Request](s.errorHandler),
	)
	r.Get("/", signUp)
	r.Post("/", signUp)

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[Request](binder.JSON()),
		handler.WithErrorHandler[Request](s.errorHandler),
	))

	r.NotFound(s.routeError(handler.ErrNotFound))
	r.MethodNotAllowed(s.routeError(handler.ErrMethodNotAllowed))

	return r
}

func (s *Service) routeError(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), err)
	}
}

func (s *Service) signUp(ctx handler.Context, req Request) handler.Response {
	form := FormParams{Action: s.action}
	if ctx.Request().Method != http.MethodPost {
		return s.render(form, http.StatusOK)
	}

	values := req.Values()
	res := Validate(values)
	form.Values = values
	form.Messages = res.Messages()

	if !res.OK() {
		s.log.DebugContext(ctx, "sign-up form rejected",
			logger.Event("validation_failed"),
			logger.Fields(res.Fields()),
		)
		return s.render(form, http.StatusUnprocessableEntity)
	}

	s.log.InfoContext(ctx, "sign-up form accepted", logger.Event("validation_passed"))
	for _, hook := range s.onSuccess {
		hook(ctx, values)
	}

	form.Success = true
	return s.render(form, http.StatusOK)
}

func (s *Service) render(form FormParams, status int) handler.Response {
	formView := s.views.Form(form)
	page := PageParams{
		Title:     PageTitle,
		ScriptURL: s.scriptURL,
		Form:      form,
		FormView:  formView,
	}
	return handler.TemplPartial(
		formView,
		s.views.Page(page),
		handler.WithTarget("#"+FormID),
		handler.WithPatchMode(handler.PatchOuter),
		handler.WithStatus(status),
	)
}

// ValidateResponse is the body returned by POST /validate.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors Messages `json:"errors,omitempty"`
}

func (s *Service) validate(ctx handler.Context, req Request) handler.Response {
	res := Validate(req.Values())
	if !res.OK() {
		s.log.DebugContext(ctx, "sign-up payload rejected",
			logger.Event("validation_failed"),
			logger.Fields(res.Fields()),
		)
		return handler.JSON(http.StatusUnprocessableEntity, ValidateResponse{
			Errors: res.Messages(),
		})
	}
	return handler.JSON(http.StatusOK, ValidateResponse{Valid: true})
}
