package signup

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/handler"
)

const (
	// PageTitle is the heading and document title of the sign-up page.
	PageTitle = "바닐라 폼 처리"
	// FormID is the element id Datastar patches target.
	FormID = "signup-form"
	// SuccessNotice is shown above the form after a valid submission.
	SuccessNotice = "성공"

	DatastarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"
)

// PageParams contains data for rendering the full sign-up page.
type PageParams struct {
	Title string
	// ScriptURL loads the Datastar client. Empty disables it and the form
	// falls back to a regular POST.
	ScriptURL string
	Form      FormParams
	// FormView is the rendered form. Nil renders FormView(Form).
	FormView templ.Component
}

// FormParams contains data for rendering the sign-up form.
type FormParams struct {
	Action   string
	Values   Values
	Messages Messages
	Success  bool
}

// Views renders the sign-up module. Any nil field falls back to the default.
type Views struct {
	Page      func(PageParams) templ.Component
	Form      func(FormParams) templ.Component
	ErrorPage func(handler.ErrorPageParams) handler.TemplComponent
}

func DefaultViews() Views {
	return Views{
		Page:      PageView,
		Form:      FormView,
		ErrorPage: ErrorPageView,
	}
}

func (v Views) withDefaults() Views {
	d := DefaultViews()
	if v.Page == nil {
		v.Page = d.Page
	}
	if v.Form == nil {
		v.Form = d.Form
	}
	if v.ErrorPage == nil {
		v.ErrorPage = d.ErrorPage
	}
	return v
}

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// PageView renders the HTML document around FormView.
func PageView(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := p.Title
		if title == "" {
			title = PageTitle
		}

		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="ko"><head><meta charset="utf-8"><title>`)
		h.text(title)
		h.raw(`</title>`)
		if p.ScriptURL != "" {
			h.raw(`<script type="module" src="`)
			h.text(p.ScriptURL)
			h.raw(`"></script>`)
		}
		h.raw(`</head><body><div><h1>`)
		h.text(title)
		h.raw(`</h1>`)
		form := p.FormView
		if form == nil {
			form = FormView(p.Form)
		}
		h.component(ctx, form)
		h.raw(`</div></body></html>`)
		return h.err
	})
}

type textInput struct {
	field string
	kind  string
	echo  bool
}

var textInputs = []textInput{
	{field: FieldName, kind: "text", echo: true},
	{field: FieldEmail, kind: "text", echo: true},
	{field: FieldPassword, kind: "password"},
	{field: FieldRePassword, kind: "password"},
}

// FormView renders the sign-up form. Password values are never written back.
func FormView(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := p.Action
		if action == "" {
			action = "/"
		}

		h := &htmlWriter{w: w}
		h.raw(`<form id="` + FormID + `" method="post" action="`)
		h.text(action)
		h.raw(`" data-on:submit="`)
		h.text("@post('" + action + "', {contentType: 'form'})")
		h.raw(`">`)

		if p.Success {
			h.raw(`<p role="status">`)
			h.text(SuccessNotice)
			h.raw(`</p>`)
		}

		for _, in := range textInputs {
			h.raw(`<div><label for="` + in.field + `">`)
			h.text(Label(in.field))
			h.raw(`</label><input type="` + in.kind + `" id="` + in.field + `" name="` + in.field + `"`)
			if in.echo && p.Values.Has(in.field) {
				h.raw(` value="`)
				h.text(p.Values.Get(in.field))
				h.raw(`"`)
			}
			h.raw(` aria-invalid="` + p.Messages.Invalid(in.field) + `" aria-describedby="` + in.field + `Error">`)
			writeMessage(h, p.Messages, in.field)
			h.raw(`</div>`)
		}

		h.raw(`<div><label for="birth">`)
		h.text(Label(FieldBirth))
		h.raw(`</label><input type="date" id="birth" name="birth"`)
		if p.Values.Has(FieldBirth) {
			h.raw(` value="`)
			h.text(p.Values.Get(FieldBirth))
			h.raw(`"`)
		}
		h.raw(`></div>`)

		h.raw(`<fieldset aria-describedby="genderError"><legend>`)
		h.text(Label(FieldGender))
		h.raw(`</legend>`)
		for _, opt := range GenderChoices {
			h.raw(`<span><label for="` + opt.Value + `">`)
			h.text(opt.Label)
			h.raw(`</label><input type="radio" id="` + opt.Value + `" name="gender" value="` + opt.Value + `"`)
			if p.Values.Get(FieldGender) == opt.Value {
				h.raw(` checked`)
			}
			h.raw(`></span>`)
		}
		writeMessage(h, p.Messages, FieldGender)
		h.raw(`</fieldset><button type="submit">가입하기</button></form>`)
		return h.err
	})
}

func writeMessage(h *htmlWriter, msgs Messages, field string) {
	if !msgs.Has(field) {
		return
	}
	h.raw(`<p aria-live="assertive" id="` + field + `Error">`)
	h.text(msgs.Get(field))
	h.raw(`</p>`)
}

// ErrorPageView renders transport errors such as a malformed request body.
func ErrorPageView(p handler.ErrorPageParams) handler.TemplComponent {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="ko"><head><meta charset="utf-8"><title>`)
		h.text(PageTitle)
		h.raw(`</title></head><body><div><h1>`)
		h.text(PageTitle)
		h.raw(`</h1><p role="alert">`)
		h.text(p.Message)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p><small>`)
			h.text(p.RequestID)
			h.raw(`</small></p>`)
		}
		h.raw(`</div></body></html>`)
		return h.err
	})
}
