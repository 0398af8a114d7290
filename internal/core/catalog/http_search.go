// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
)

// home is the library page: search form, results and catalog totals.
func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	params := ParseSearch(
		requestutil.Query(request, "q"),
		requestutil.Query(request, "scope"),
		requestutil.Query(request, "sort"),
		requestutil.Query(request, "order"),
	)

	result, err := handler.service.Search(request.Context(), params)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "home", result)
}
