package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/book"
	"libraryapi/internal/library"
)

type BookHandler struct {
	svc *library.Service
}

func NewBookHandler(svc *library.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

type createBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	// ISBN is free text; only duplicates are rejected, by the service.
	ISBN string `json:"isbn" validate:"required"`
}

// Create handles POST /api/v1/biblioteca/livros
// @Summary Catalog a new book
// @Description Add a book to the catalog; the ISBN must not already be cataloged
// @Tags books
// @Accept json
// @Produce json
// @Param book body createBookRequest true "Book to catalog"
// @Success 201 {object} book.Book
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/biblioteca/livros [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(input); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	stored, err := h.svc.CatalogBook(r.Context(), book.Book{
		Title:  input.Title,
		Author: input.Author,
		ISBN:   input.ISBN,
	})
	if err != nil {
		if errors.Is(err, library.ErrDuplicateISBN) {
			JSONError(w, http.StatusBadRequest, "DUPLICATE_ISBN", "ISBN already cataloged", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSON(w, http.StatusCreated, stored)
}

// List handles GET /api/v1/biblioteca/livros
// @Summary List books
// @Description Get all cataloged books
// @Tags books
// @Produce json
// @Success 200 {array} book.Book
// @Router /api/v1/biblioteca/livros [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []book.Book{}
	}
	JSON(w, http.StatusOK, books)
}

// GetByID handles GET /api/v1/biblioteca/livros/{id}
// @Summary Get book by ID
// @Description Get a single book by its ID
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} book.Book
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/biblioteca/livros/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	b, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSON(w, http.StatusOK, b)
}
