// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"errors"
	"net/http"

	"github.com/taibuivan/bookshelf/internal/platform/render"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
)

// # Cached Recommendations

func (handler *Handler) recommendations(writer http.ResponseWriter, request *http.Request) {
	recommendations, err := handler.service.Recommendations(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if len(recommendations.Books) == 0 {
		render.Redirect(writer, request, "/", render.KindInfo, "library_empty")
		return
	}

	notice := handler.renderer.NoticeFrom(request)
	if notice == nil && recommendations.Cached == 0 {
		notice = handler.renderer.Notice(render.KindInfo, "no_cached_reviews")
	}

	handler.renderer.PageWithNotice(writer, request, http.StatusOK, "recommend", recommendations, notice)
}

func (handler *Handler) editReview(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	err = handler.service.EditRecommendation(request.Context(), bookID, request.FormValue(FieldReview))
	switch {
	case err == nil:
		render.Redirect(writer, request, "/recommend", render.KindSuccess, "review_updated")
	case errors.Is(err, ErrEmptyReview):
		render.Redirect(writer, request, "/recommend", render.KindError, "review_empty")
	default:
		handler.renderer.Error(writer, request, err)
	}
}
