package http

import (
	"net/http"

	"libraryapi/internal/library"
)

const basePath = "/api/v1/biblioteca"

// Routes builds the API router. Kept out of main so handler tests can
// exercise routing.
func Routes(svc *library.Service) *http.ServeMux {
	bookHandler := NewBookHandler(svc)
	loanHandler := NewLoanHandler(svc)

	mux := http.NewServeMux()

	mux.HandleFunc("POST "+basePath+"/livros", bookHandler.Create)
	mux.HandleFunc("GET "+basePath+"/livros", bookHandler.List)
	mux.HandleFunc("GET "+basePath+"/livros/{id}", bookHandler.GetByID)

	mux.HandleFunc("POST "+basePath+"/emprestimos", loanHandler.Create)
	mux.HandleFunc("GET "+basePath+"/emprestimos", loanHandler.List)
	mux.HandleFunc("PUT "+basePath+"/emprestimos/devolver/{bookId}", loanHandler.Return)

	return mux
}
