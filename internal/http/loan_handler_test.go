package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/loan"
	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogBook(t *testing.T, router http.Handler, title, isbn string) string {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/biblioteca/livros",
		map[string]string{"title": title, "author": "Herbert", "isbn": isbn}))
	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, resp.Code)
	return resp.Body["id"].(string)
}

func borrowBook(t *testing.T, router http.Handler, bookID, borrower string) testutil.RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/biblioteca/emprestimos",
		map[string]string{"bookId": bookID, "borrowerName": borrower}))
	return testutil.RecordHTTPResponse(w)
}

func returnBook(t *testing.T, router http.Handler, bookID string) testutil.RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/biblioteca/emprestimos/devolver/"+bookID, nil))
	return testutil.RecordHTTPResponse(w)
}

func getBook(t *testing.T, router http.Handler, bookID string) testutil.RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/biblioteca/livros/"+bookID, nil))
	return testutil.RecordHTTPResponse(w)
}

func TestBorrow(t *testing.T) {
	router, _ := newTestRouter()
	bookID := catalogBook(t, router, "Dune", "9780441172719")
	today := loan.Today()

	resp := borrowBook(t, router, bookID, "Alice")
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.NotEmpty(t, resp.Body["id"])
	assert.Equal(t, bookID, resp.Body["bookId"])
	assert.Equal(t, "Alice", resp.Body["borrowerName"])
	assert.Equal(t, today.String(), resp.Body["loanDate"])
	assert.Equal(t, today.AddDays(7).String(), resp.Body["dueDate"])
	_, hasReturnDate := resp.Body["returnDate"]
	assert.False(t, hasReturnDate, "active loan must not carry a return date")

	got := getBook(t, router, bookID)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, false, got.Body["available"])
}

func TestBorrow_Errors(t *testing.T) {
	t.Run("missing book", func(t *testing.T) {
		router, _ := newTestRouter()

		resp := borrowBook(t, router, "missing-id", "Alice")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("already on loan", func(t *testing.T) {
		router, _ := newTestRouter()
		bookID := catalogBook(t, router, "Dune", "9780441172719")

		resp := borrowBook(t, router, bookID, "Alice")
		require.Equal(t, http.StatusCreated, resp.Code)

		resp = borrowBook(t, router, bookID, "Bob")
		assert.Equal(t, http.StatusConflict, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "BOOK_UNAVAILABLE", errBody["code"])
		assert.Contains(t, errBody["message"], `"Dune"`, "conflict message names the book")
	})

	t.Run("missing borrower name", func(t *testing.T) {
		router, _ := newTestRouter()
		bookID := catalogBook(t, router, "Dune", "9780441172719")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/biblioteca/emprestimos",
			map[string]string{"bookId": bookID}))
		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestReturn(t *testing.T) {
	router, _ := newTestRouter()
	bookID := catalogBook(t, router, "Dune", "9780441172719")
	today := loan.Today()

	resp := borrowBook(t, router, bookID, "Alice")
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = returnBook(t, router, bookID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, today.String(), resp.Body["returnDate"])

	got := getBook(t, router, bookID)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, true, got.Body["available"])

	// Returning again must fail: no active loan remains.
	resp = returnBook(t, router, bookID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	errBody := resp.Body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Contains(t, errBody["message"], bookID, "message names the book ID")
}

func TestReturn_NoActiveLoan(t *testing.T) {
	router, _ := newTestRouter()
	bookID := catalogBook(t, router, "Dune", "9780441172719")

	resp := returnBook(t, router, bookID)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// A failed return must not mutate the book.
	got := getBook(t, router, bookID)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, true, got.Body["available"])
}

func TestLoanList(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/biblioteca/emprestimos", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, testutil.DecodeList(w))

	bookID := catalogBook(t, router, "Dune", "9780441172719")

	first := borrowBook(t, router, bookID, "Alice")
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusOK, returnBook(t, router, bookID).Code)

	second := borrowBook(t, router, bookID, "Bob")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.NotEqual(t, first.Body["id"], second.Body["id"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/biblioteca/emprestimos", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	history := testutil.DecodeList(w)
	require.Len(t, history, 2, "history keeps closed loans")

	_, firstClosed := history[0]["returnDate"]
	_, secondClosed := history[1]["returnDate"]
	assert.True(t, firstClosed)
	assert.False(t, secondClosed)
}
