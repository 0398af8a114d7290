// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/taibuivan/bookshelf/internal/platform/render"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
)

// # Maintenance Page

const adminPath = "/admin"

func (handler *Handler) admin(writer http.ResponseWriter, request *http.Request) {
	inventory, err := handler.service.Inventory(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "admin", inventory)
}

// adminDeleteAuthor cascades like the author page does, then returns here.
func (handler *Handler) adminDeleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", "Author")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if _, err := handler.service.DeleteAuthor(request.Context(), authorID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	render.Redirect(writer, request, adminPath, render.KindSuccess, "admin_author_deleted")
}

// adminDeleteBook skips the last-book confirmation.
func (handler *Handler) adminDeleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveBook(request.Context(), bookID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	render.Redirect(writer, request, adminPath, render.KindSuccess, "admin_book_deleted")
}
