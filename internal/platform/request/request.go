// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and form
access, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

/*
IntID retrieves a named numeric URL parameter.

Parameters:
  - request: *http.Request
  - name: string (route placeholder, e.g. "id")
  - resource: string (entity name used in the NOT_FOUND message)

Returns:
  - int: the parsed identifier
  - error: apperr.NotFound when the segment is not a positive integer
*/
func IntID(request *http.Request, name, resource string) (int, error) {
	raw := chi.URLParam(request, name)

	// Ids are INTEGER columns; anything wider cannot name a row.
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(resource)
	}
	return int(id), nil
}

/*
Form returns the trimmed value of a form field (POST body first, then query).

The form is parsed lazily by [http.Request.FormValue].
*/
func Form(request *http.Request, name string) string {
	return strings.TrimSpace(request.FormValue(name))
}

/*
Query returns the trimmed value of a URL query parameter.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}
