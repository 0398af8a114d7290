// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog provides the HTML interface of the personal library.

Every user intent has its own route. Handlers parse and validate the request,
call the [Service], then either render a page or redirect with a notice code.

# Routing Strategy

  - Reads (GET): Library search, detail pages and forms.
  - Writes (POST): Form submissions. Each one ends in a 303 redirect so a
    browser refresh never repeats the write.

The pending delete confirmation is carried only by the redirect URL; no
server-side session state exists.
*/
package catalog

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/render"
)

// # Handler Implementation

// Handler implements the HTTP layer of the catalog.
type Handler struct {
	service  *Service
	renderer *render.Renderer
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// Routes returns a [chi.Router] configured with the catalog's pages.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Library
	router.Get("/", handler.home)
	router.Get("/recommend", handler.recommendations)

	// ## Authors
	router.Get("/add_author", handler.newAuthorForm)
	router.Post("/add_author", handler.createAuthor)
	router.Route("/author/{id}", func(author chi.Router) {
		author.Get("/", handler.authorDetail)
		author.Get("/edit", handler.editAuthorForm)
		author.Post("/edit", handler.updateAuthor)
		author.Post("/delete", handler.deleteAuthor)
	})

	// ## Books
	router.Get("/add_book", handler.newBookForm)
	router.Post("/add_book", handler.createBook)
	router.Route("/book/{id}", func(book chi.Router) {
		book.Get("/", handler.bookDetail)
		book.Get("/edit", handler.editBookForm)
		book.Post("/edit", handler.updateBook)
		book.Post("/rate", handler.rateBook)
		book.Post("/edit_review", handler.editReview)

		// Delete workflow
		book.Post("/delete", handler.deleteBook)
		book.Get("/confirm_delete", handler.confirmDeleteForm)
		book.Post("/confirm_delete", handler.confirmDelete)
	})

	// ## Maintenance
	router.Get(adminPath, handler.admin)
	router.Post(adminPath+"/delete_author/{id}", handler.adminDeleteAuthor)
	router.Post(adminPath+"/delete_book/{id}", handler.adminDeleteBook)

	return router
}

// # Page Payloads

// formPage is shared by the author and book forms.
type formPage struct {
	Heading string
	Action  string
	Values  url.Values
	Authors []*Author
	Error   *apperr.AppError
}

type authorPage struct {
	Author *Author
	Books  []*Book
}

// # Shared Responses

/*
formError re-renders a form with the failure attached.

Description: Validation and conflict errors are the user's to fix, so the
form comes back with their input intact. Anything else is rendered as the
error page.
*/
func (handler *Handler) formError(writer http.ResponseWriter, request *http.Request, name string, page formPage, err error) {
	appErr := apperr.As(err)
	if appErr == nil || !appErr.Correctable() {
		handler.renderer.Error(writer, request, err)
		return
	}

	page.Error = appErr
	page.Values = request.PostForm
	handler.renderer.Page(writer, request, appErr.HTTPStatus, name, page)
}

func authorPath(id int) string {
	return fmt.Sprintf("/author/%d", id)
}

func bookPath(id int) string {
	return fmt.Sprintf("/book/%d", id)
}
