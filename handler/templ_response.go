package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches github.com/a-h/templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures a templ response.
type TemplOption func(*templOptions)

type templOptions struct {
	status int
	patch  []datastar.PatchElementOption
}

// WithStatus sets the status code for regular HTML responses. Datastar
// responses are event streams and always answer 200.
func WithStatus(code int) TemplOption {
	return func(o *templOptions) { o.status = code }
}

// WithTarget sets the CSS selector the Datastar patch applies to.
func WithTarget(selector string) TemplOption {
	return func(o *templOptions) { o.patch = append(o.patch, datastar.WithSelector(selector)) }
}

// WithPatchMode sets how the Datastar patch is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(o *templOptions) { o.patch = append(o.patch, datastar.WithMode(mode)) }
}

type templResponse struct {
	partial TemplComponent
	full    TemplComponent
	opts    templOptions
}

// Render streams the partial as an SSE element patch for Datastar requests,
// or buffers the full component and writes it as HTML. Buffering keeps a
// failed render from leaving a half-written page behind.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.opts.patch...)
	}

	var buf bytes.Buffer
	if err := t.full.Render(r.Context(), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.opts.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ renders one component for both regular and Datastar requests.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return TemplPartial(component, component, opts...)
}

// TemplPartial renders partial for Datastar requests and full otherwise.
//
//	return handler.TemplPartial(
//		views.Form(params),
//		views.Page(params),
//		handler.WithTarget("#signup-form"),
//		handler.WithStatus(http.StatusUnprocessableEntity),
//	)
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	o := templOptions{status: http.StatusOK}
	for _, opt := range opts {
		opt(&o)
	}
	return templResponse{partial: partial, full: full, opts: o}
}
