package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/binder"
)

type signUpForm struct {
	Name     *string  `form:"name"`
	Gender   *string  `form:"gender"`
	Birth    string   `form:"birth"`
	Tags     []string `form:"tag"`
	Age      int      `form:"age"`
	Agree    bool     `form:"agree"`
	Internal string   `form:"-"`
	Nickname string
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()
	bind := binder.Form()

	t.Run("binds url-encoded values as submitted", func(t *testing.T) {
		t.Parallel()
		req := postForm(url.Values{
			"name":     {"  Kim  "},
			"birth":    {"2000-01-02"},
			"tag":      {"a", "b,c"},
			"age":      {"30"},
			"agree":    {"on"},
			"Internal": {"x"},
			"nickname": {"kim"},
		})

		var got signUpForm
		require.NoError(t, bind(req, &got))
		require.NotNil(t, got.Name)
		assert.Equal(t, "  Kim  ", *got.Name)
		assert.Nil(t, got.Gender, "absent field stays nil")
		assert.Equal(t, "2000-01-02", got.Birth)
		assert.Equal(t, []string{"a", "b,c"}, got.Tags)
		assert.Equal(t, 30, got.Age)
		assert.True(t, got.Agree)
		assert.Empty(t, got.Internal)
		assert.Equal(t, "kim", got.Nickname)
	})

	t.Run("empty value yields pointer to empty string", func(t *testing.T) {
		t.Parallel()
		var got signUpForm
		require.NoError(t, bind(postForm(url.Values{"name": {""}}), &got))
		require.NotNil(t, got.Name)
		assert.Empty(t, *got.Name)
	})

	t.Run("first value wins", func(t *testing.T) {
		t.Parallel()
		var got signUpForm
		require.NoError(t, bind(postForm(url.Values{"gender": {"male", "female"}}), &got))
		assert.Equal(t, "male", *got.Gender)
	})

	t.Run("query string is ignored", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?name=fromquery", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var got signUpForm
		require.NoError(t, bind(req, &got))
		assert.Nil(t, got.Name)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		require.NoError(t, mw.WriteField("name", "Kim"))
		require.NoError(t, mw.WriteField("gender", "female"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got signUpForm
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "Kim", *got.Name)
		assert.Equal(t, "female", *got.Gender)
	})

	t.Run("not applicable without body", func(t *testing.T) {
		t.Parallel()
		var got signUpForm
		err := bind(httptest.NewRequest(http.MethodGet, "/?name=x", nil), &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))
		var got signUpForm
		assert.ErrorIs(t, bind(req, &got), binder.ErrMissingContentType)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var got signUpForm
		assert.ErrorIs(t, bind(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var got signUpForm
		err := bind(postForm(url.Values{"age": {"old"}}), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("target must be struct pointer", func(t *testing.T) {
		t.Parallel()
		var s string
		assert.ErrorIs(t, bind(postForm(url.Values{}), &s), binder.ErrInvalidForm)
		assert.ErrorIs(t, bind(postForm(url.Values{}), signUpForm{}), binder.ErrInvalidForm)
	})
}
