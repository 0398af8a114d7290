// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"errors"
	"net/http"

	"github.com/taibuivan/bookshelf/internal/platform/render"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
)

// # Book Pages

func (handler *Handler) bookDetail(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "book_detail", book)
}

func (handler *Handler) newBookForm(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "book_form", formPage{
		Heading: "Add book",
		Action:  "/add_book",
		Authors: authors,
	})
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	page := formPage{Heading: "Add book", Action: "/add_book", Authors: authors}

	book, err := decodeBookForm(request)
	if err == nil {
		err = handler.service.CreateBook(request.Context(), book)
	}
	if err != nil {
		handler.formError(writer, request, "book_form", page, err)
		return
	}

	render.Redirect(writer, request, "/", render.KindSuccess, "book_added")
}

func (handler *Handler) editBookForm(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "book_form", formPage{
		Heading: "Edit " + book.Title,
		Action:  bookPath(bookID) + "/edit",
		Values:  bookValues(book),
		Authors: authors,
	})
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	page := formPage{Heading: "Edit book", Action: bookPath(bookID) + "/edit", Authors: authors}

	book, err := decodeBookForm(request)
	if err == nil {
		book.ID = bookID
		err = handler.service.UpdateBook(request.Context(), book)
	}
	if err != nil {
		handler.formError(writer, request, "book_form", page, err)
		return
	}

	render.Redirect(writer, request, bookPath(bookID), render.KindSuccess, "book_updated")
}

// # Rating

// rateBook redirects back to the detail page. A rejected rating leaves the
// stored value untouched and surfaces as an error notice.
func (handler *Handler) rateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	_, err = handler.service.RateBook(request.Context(), bookID, request.FormValue(FieldRating))
	switch {
	case err == nil:
		render.Redirect(writer, request, bookPath(bookID), render.KindSuccess, "book_rated")
	case errors.Is(err, ErrRatingNotNumber):
		render.Redirect(writer, request, bookPath(bookID), render.KindError, "rating_invalid")
	case errors.Is(err, ErrRatingOutOfRange):
		render.Redirect(writer, request, bookPath(bookID), render.KindError, "rating_out_of_range")
	default:
		handler.renderer.Error(writer, request, err)
	}
}

// # Delete Workflow

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	outcome, err := handler.service.DeleteBook(request.Context(), bookID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if outcome.State == DeletePendingConfirmation {
		render.Redirect(writer, request, bookPath(outcome.BookID)+"/confirm_delete", "", "")
		return
	}
	render.Redirect(writer, request, "/", render.KindSuccess, "book_deleted")
}

// confirmDeleteForm only reads; abandoning this page leaves the catalog as it was.
func (handler *Handler) confirmDeleteForm(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "confirm_delete", book)
}

func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	decision, err := ParseDecision(request.FormValue(FieldDeleteAuthor))
	if err != nil {
		render.Redirect(writer, request, bookPath(bookID)+"/confirm_delete", render.KindError, "decision_missing")
		return
	}

	if err := handler.service.ConfirmDelete(request.Context(), bookID, decision); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	code := "book_kept_author"
	if decision == DecisionDeleteBoth {
		code = "book_and_author"
	}
	render.Redirect(writer, request, "/", render.KindSuccess, code)
}
