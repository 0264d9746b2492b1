package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/binder"
)

type signUpJSON struct {
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()
	bind := binder.JSON()

	t.Run("absent keys stay nil", func(t *testing.T) {
		t.Parallel()
		var got signUpJSON
		require.NoError(t, bind(postJSON(`{"name":" Kim "}`), &got))
		assert.Equal(t, " Kim ", *got.Name)
		assert.Nil(t, got.Gender)
	})

	t.Run("null is absent", func(t *testing.T) {
		t.Parallel()
		var got signUpJSON
		require.NoError(t, bind(postJSON(`{"gender":null}`), &got))
		assert.Nil(t, got.Gender)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"malformed", `{"name":`},
		{"unknown field", `{"nickname":"x"}`},
		{"wrong type", `{"name":1}`},
		{"trailing data", `{"name":"x"} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got signUpJSON
			assert.ErrorIs(t, bind(postJSON(tt.body), &got), binder.ErrInvalidJSON)
		})
	}

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		var got signUpJSON
		assert.ErrorIs(t, bind(postJSON(body), &got), binder.ErrInvalidJSON)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var got signUpJSON
		assert.ErrorIs(t, bind(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("not applicable for GET", func(t *testing.T) {
		t.Parallel()
		var got signUpJSON
		assert.ErrorIs(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &got), binder.ErrBinderNotApplicable)
	})
}
