// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
)

func withURLParam(request *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func TestIntID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		isValid bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"2147483647", 2147483647, true},
		{"3000000000", 0, false},
	}

	for _, tt := range tests {
		request := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)

		id, err := requestutil.IntID(request, "id", "Book")
		if tt.isValid {
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		} else {
			assert.True(t, apperr.HasCode(err, apperr.CodeNotFound), tt.raw)
			assert.Equal(t, "Book not found", err.Error())
		}
	}
}

func TestForm_TrimsValues(t *testing.T) {
	body := url.Values{"name": {"  Jane Austen  "}}.Encode()
	request := httptest.NewRequest(http.MethodPost, "/add_author?q=%20emma%20", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.Equal(t, "Jane Austen", requestutil.Form(request, "name"))
	assert.Equal(t, "emma", requestutil.Query(request, "q"))
	assert.Empty(t, requestutil.Form(request, "missing"))
}
