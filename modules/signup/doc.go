// Package signup implements the sign-up form: extracting submitted field
// values, validating them against an ordered rule list, and rendering the
// per-field error messages back into the form.
//
// The core is the pure function Validate. Front-ends only differ in how they
// collect a Values set and where they show the resulting Messages:
//
//	values := signup.Extract(r.PostForm)
//	res := signup.Validate(values)
//	if !res.OK() {
//		msgs := res.Messages() // at most one message per field
//	}
//
// Service exposes the form over HTTP (full page, Datastar fragment patches
// and a JSON endpoint). The terminal front-end lives in internal/prompt.
package signup
