// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/taibuivan/bookshelf/internal/platform/render"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
)

// # Author Pages

func (handler *Handler) authorDetail(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", "Author")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	author, books, err := handler.service.AuthorWithBooks(request.Context(), authorID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "author_detail", authorPage{Author: author, Books: books})
}

func (handler *Handler) newAuthorForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, "author_form", formPage{
		Heading: "Add author",
		Action:  "/add_author",
	})
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	page := formPage{Heading: "Add author", Action: "/add_author"}

	author, err := decodeAuthorForm(request)
	if err == nil {
		err = handler.service.CreateAuthor(request.Context(), author)
	}
	if err != nil {
		handler.formError(writer, request, "author_form", page, err)
		return
	}

	render.Redirect(writer, request, "/", render.KindSuccess, "author_added")
}

func (handler *Handler) editAuthorForm(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", "Author")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "author_form", formPage{
		Heading: "Edit " + author.Name,
		Action:  authorPath(authorID) + "/edit",
		Values:  authorValues(author),
	})
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", "Author")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	page := formPage{Heading: "Edit author", Action: authorPath(authorID) + "/edit"}

	author, err := decodeAuthorForm(request)
	if err == nil {
		author.ID = authorID
		err = handler.service.UpdateAuthor(request.Context(), author)
	}
	if err != nil {
		handler.formError(writer, request, "author_form", page, err)
		return
	}

	render.Redirect(writer, request, authorPath(authorID), render.KindSuccess, "author_updated")
}

// deleteAuthor cascades immediately. Only the last-book path through
// deleteBook asks for confirmation.
func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", "Author")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if _, err := handler.service.DeleteAuthor(request.Context(), authorID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	render.Redirect(writer, request, "/", render.KindSuccess, "author_deleted")
}
