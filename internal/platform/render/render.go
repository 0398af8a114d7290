// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render turns handler results into HTML pages.

Every page template is parsed together with the shared layout once at
startup, so a malformed template fails the boot rather than a request.

Response Types:

  - Page: A full HTML page wrapped in the layout, with an optional notice.
  - Error: The error page, with the status taken from [apperr.AppError].
  - Redirect: A 303 See Other carrying a notice code in the query string.
*/
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/ctxutil"
	"github.com/taibuivan/bookshelf/pkg/convert"
	"github.com/taibuivan/bookshelf/pkg/pointer"
)

const (
	layoutFile = "layout.html"
	errorPage  = "error"
)

// # Notices

// Notice kinds double as the query parameter that carries their code.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Notice is a one-shot message shown above the page content.
type Notice struct {
	Kind    string
	Message string
}

// Options configures a [Renderer].
type Options struct {
	// Funcs are merged over the built-in template functions.
	Funcs template.FuncMap

	// Notices maps notice codes (as used with [Redirect]) to messages.
	Notices map[string]string
}

// # Renderer

// Renderer executes parsed page templates.
type Renderer struct {
	pages   map[string]*template.Template
	notices map[string]string
}

// View is the data every page template receives. Page-specific data lives
// under Page.
type View struct {
	Notice *Notice
	Status int
	Page   any
}

/*
New parses every *.html file of files (except the layout) as a page.

Parameters:
  - files: fs.FS holding layout.html and one file per page
  - options: Options (extra template functions and notice messages)

Returns:
  - *Renderer: Ready to serve; page names are file names without ".html"
  - error: Template parse failures
*/
func New(files fs.FS, options Options) (*Renderer, error) {
	funcs := baseFuncs()
	maps.Copy(funcs, options.Funcs)

	names, err := fs.Glob(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("render: list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}

		page, err := template.New(name).Funcs(funcs).ParseFS(files, layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = page
	}

	if _, ok := pages[errorPage]; !ok {
		return nil, fmt.Errorf("render: missing %s.html", errorPage)
	}

	return &Renderer{pages: pages, notices: options.Notices}, nil
}

// Page renders the named page inside the layout. The notice is read from
// the request's query string.
func (renderer *Renderer) Page(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	renderer.PageWithNotice(writer, request, status, name, data, renderer.NoticeFrom(request))
}

// PageWithNotice is [Renderer.Page] with an explicit notice.
func (renderer *Renderer) PageWithNotice(writer http.ResponseWriter, request *http.Request, status int, name string, data any, notice *Notice) {
	view := View{Notice: notice, Status: status, Page: data}
	renderer.execute(writer, request, status, name, view)
}

/*
Error renders the error page for err.

Description: Errors that are not an [apperr.AppError] are treated as internal.
Server-side failures are logged with their cause; the page only ever shows
the client-safe message.
*/
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appErr := apperr.From(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "request_failed",
			slog.String("code", appErr.Code),
			slog.Any("error", appErr.Cause),
		)
	}

	view := View{Status: appErr.HTTPStatus, Page: appErr}
	renderer.execute(writer, request, appErr.HTTPStatus, errorPage, view)
}

// Notice resolves a notice code, or returns nil when the code is unknown.
func (renderer *Renderer) Notice(kind, code string) *Notice {
	message, ok := renderer.notices[code]
	if !ok {
		return nil
	}
	return &Notice{Kind: kind, Message: message}
}

// NoticeFrom resolves the notice code carried in the request's query string.
// Unknown codes are ignored.
func (renderer *Renderer) NoticeFrom(request *http.Request) *Notice {
	query := request.URL.Query()

	for _, kind := range []string{KindError, KindSuccess, KindInfo} {
		if notice := renderer.Notice(kind, query.Get(kind)); notice != nil {
			return notice
		}
	}
	return nil
}

// execute buffers the output so a template failure never leaves a half-written page.
func (renderer *Renderer) execute(writer http.ResponseWriter, request *http.Request, status int, name string, view View) {
	page, ok := renderer.pages[name]
	if !ok {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "template_missing", slog.String("template", name))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buffer bytes.Buffer
	if err := page.ExecuteTemplate(&buffer, "layout", view); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "template_failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// # Redirects

/*
Redirect sends a 303 See Other to path with kind=code appended to its query.

Example:

	render.Redirect(writer, request, "/", render.KindSuccess, "book_deleted")
	// Location: /?success=book_deleted
*/
func Redirect(writer http.ResponseWriter, request *http.Request, path, kind, code string) {
	target, err := url.Parse(path)
	if err != nil {
		target = &url.URL{Path: "/"}
	}

	if kind != "" && code != "" {
		query := target.Query()
		query.Set(kind, code)
		target.RawQuery = query.Encode()
	}

	http.Redirect(writer, request, target.String(), http.StatusSeeOther)
}

// # Template Functions

func baseFuncs() template.FuncMap {
	return template.FuncMap{
		"date":       formatDate,
		"intval":     pointer.Val[int],
		"strval":     pointer.Val[string],
		"seq":        seq,
		"fieldError": fieldError,
	}
}

// fieldError renders the message attached to field, if any.
func fieldError(err *apperr.AppError, field string) template.HTML {
	if err == nil {
		return ""
	}
	message := err.FieldMessage(field)
	if message == "" {
		return ""
	}
	return template.HTML(`<span class="field-error">` + template.HTMLEscapeString(message) + `</span>`)
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(convert.DateLayout)
}

// seq returns the inclusive range [from, to], used for rating pickers.
func seq(from, to int) []int {
	if to < from {
		return nil
	}
	values := make([]int, 0, to-from+1)
	for value := from; value <= to; value++ {
		values = append(values, value)
	}
	return values
}
