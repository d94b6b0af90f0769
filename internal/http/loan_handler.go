package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"libraryapi/internal/book"
	"libraryapi/internal/library"
	"libraryapi/internal/loan"
)

// unavailableMessage prefers the service's enriched conflict text (book
// title, conflicting loan ID) over a generic one.
func unavailableMessage(err error) string {
	var unavailable *library.BookUnavailableError
	if errors.As(err, &unavailable) {
		return "The " + unavailable.Error()
	}
	return "Book is not available for loan"
}

type LoanHandler struct {
	svc *library.Service
}

func NewLoanHandler(svc *library.Service) *LoanHandler {
	return &LoanHandler{svc: svc}
}

type borrowRequest struct {
	BookID       string `json:"bookId" validate:"required"`
	BorrowerName string `json:"borrowerName" validate:"required"`
}

// Create handles POST /api/v1/biblioteca/emprestimos
// @Summary Borrow a book
// @Description Open a loan for an available book; due date is seven days out
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body borrowRequest true "Book ID and borrower name"
// @Success 201 {object} loan.Loan
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/biblioteca/emprestimos [post]
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := ValidateStruct(input); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	stored, err := h.svc.BorrowBook(r.Context(), input.BookID, input.BorrowerName)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, library.ErrBookUnavailable):
			JSONError(w, http.StatusConflict, "BOOK_UNAVAILABLE", unavailableMessage(err), nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	JSON(w, http.StatusCreated, stored)
}

// Return handles PUT /api/v1/biblioteca/emprestimos/devolver/{bookId}
// @Summary Return a book
// @Description Close the active loan for a book, freeing it for future loans
// @Tags loans
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} loan.Loan
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/biblioteca/emprestimos/devolver/{bookId} [put]
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")
	if bookID == "" {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Book ID is required", nil)
		return
	}

	closed, err := h.svc.ReturnBook(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, loan.ErrNoActiveLoan) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND",
				fmt.Sprintf("No active loan for book with ID: %s", bookID), nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSON(w, http.StatusOK, closed)
}

// List handles GET /api/v1/biblioteca/emprestimos
// @Summary List loans
// @Description Get the full loan history, active and closed
// @Tags loans
// @Produce json
// @Success 200 {array} loan.Loan
// @Router /api/v1/biblioteca/emprestimos [get]
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.ListLoans(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if loans == nil {
		loans = []loan.Loan{}
	}
	JSON(w, http.StatusOK, loans)
}
