package loan

import (
	"errors"
)

// ErrNoActiveLoan is returned when a book has no loan with an unset return date.
var ErrNoActiveLoan = errors.New("no active loan for book")

// Loan records one lending of a book. It is created once per successful
// borrow and mutated once, when the return date is set. Never deleted.
type Loan struct {
	ID           string `json:"id"`
	BookID       string `json:"bookId"`
	BorrowerName string `json:"borrowerName"`
	LoanDate     Date   `json:"loanDate"`
	DueDate      Date   `json:"dueDate"`
	ReturnDate   *Date  `json:"returnDate,omitempty"`
}

// Active reports whether the loan is still open.
func (l Loan) Active() bool {
	return l.ReturnDate == nil
}
