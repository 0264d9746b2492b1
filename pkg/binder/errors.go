package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidJSON          = errors.New("invalid JSON")

	// ErrBinderNotApplicable signals that the request carries nothing for this
	// binder. handler.Wrap skips binders that return it.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
