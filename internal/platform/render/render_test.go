// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/render"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"layout.html": {Data: []byte(`{{define "layout"}}<title>{{block "title" .}}Shelf{{end}}</title>{{with .Notice}}<p class="{{.Kind}}">{{.Message}}</p>{{end}}{{template "content" .}}{{end}}`)},
		"hello.html":  {Data: []byte(`{{define "title"}}Hello{{end}}{{define "content"}}<h1>{{.Page}}</h1>{{end}}`)},
		"error.html":  {Data: []byte(`{{define "content"}}<h1>{{.Status}} {{.Page.Message}}</h1>{{end}}`)},
		"broken.html": {Data: []byte(`{{define "content"}}{{.Page.Missing}}{{end}}`)},
	}
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	renderer, err := render.New(testFiles(), render.Options{
		Notices: map[string]string{"saved": "All saved"},
	})
	require.NoError(t, err)
	return renderer
}

func TestNew_RequiresErrorPage(t *testing.T) {
	files := testFiles()
	delete(files, "error.html")

	_, err := render.New(files, render.Options{})
	assert.Error(t, err)
}

func TestPage_EscapesDataAndShowsNotice(t *testing.T) {
	renderer := newRenderer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/?success=saved", nil)
	renderer.Page(recorder, request, http.StatusOK, "hello", "<b>world</b>")

	body := recorder.Body.String()
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body, "<title>Hello</title>")
	assert.Contains(t, body, "&lt;b&gt;world&lt;/b&gt;")
	assert.Contains(t, body, `<p class="success">All saved</p>`)
}

func TestPage_UnknownNoticeIgnored(t *testing.T) {
	renderer := newRenderer(t)

	request := httptest.NewRequest(http.MethodGet, "/?error=nope", nil)
	assert.Nil(t, renderer.NoticeFrom(request))
}

func TestPage_TemplateFailureIs500(t *testing.T) {
	renderer := newRenderer(t)

	recorder := httptest.NewRecorder()
	renderer.Page(recorder, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "broken", "plain string")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestError_UsesAppErrorStatus(t *testing.T) {
	renderer := newRenderer(t)

	recorder := httptest.NewRecorder()
	renderer.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), apperr.NotFound("Book"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "404 Book not found")
}

func TestError_HidesInternalCause(t *testing.T) {
	renderer := newRenderer(t)

	recorder := httptest.NewRecorder()
	renderer.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: relation missing"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "relation missing")
}

func TestRedirect_AppendsNotice(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/book/3/delete", nil)

	render.Redirect(recorder, request, "/?q=emma", render.KindSuccess, "book_deleted")

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/?q=emma&success=book_deleted", recorder.Header().Get("Location"))
}
