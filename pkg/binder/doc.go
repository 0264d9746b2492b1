// Package binder fills request structs from HTTP request bodies.
//
// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// using `form:"name"` struct tags. JSON decodes application/json bodies with
// encoding/json in strict mode. Both report ErrBinderNotApplicable for
// requests without a body (GET, HEAD), so handler.Wrap can chain them in
// front of the same handler that also serves the page.
//
// Pointer fields distinguish an absent value from an empty one: a field that
// was not submitted stays nil, while an empty input yields a pointer to "".
//
//	type SignUpRequest struct {
//		Name   *string `form:"name"`
//		Gender *string `form:"gender"` // nil when no radio is selected
//	}
//
// Values are bound exactly as submitted; no trimming or sanitizing happens
// here.
package binder
