package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/loan"
)

// loanPeriodDays is the fixed lending period: due date = loan date + 7 days.
const loanPeriodDays = 7

// ErrDuplicateISBN is returned when cataloging a book whose ISBN already exists.
var ErrDuplicateISBN = errors.New("isbn already cataloged")

// ErrBookUnavailable is returned when borrowing a book that is on loan.
var ErrBookUnavailable = errors.New("book not available for loan")

// BookUnavailableError carries the context of a rejected borrow: the book's
// title and, when the rejection came from the redundant active-loan check,
// the conflicting loan's ID. It matches ErrBookUnavailable under errors.Is.
type BookUnavailableError struct {
	BookTitle    string
	ActiveLoanID string
}

func (e *BookUnavailableError) Error() string {
	if e.ActiveLoanID != "" {
		return fmt.Sprintf("book %q already has an active loan (ID: %s)", e.BookTitle, e.ActiveLoanID)
	}
	return fmt.Sprintf("book %q is not available for loan", e.BookTitle)
}

func (e *BookUnavailableError) Is(target error) bool {
	return target == ErrBookUnavailable
}

// Service implements the lending rules over the two stores. It is the sole
// place where the availability invariant is enforced: a book's available flag
// must match the absence of an active loan after every successful call.
type Service struct {
	books book.Repository
	loans loan.Repository
	now   func() time.Time
}

func NewService(books book.Repository, loans loan.Repository) *Service {
	return &Service{
		books: books,
		loans: loans,
		now:   time.Now,
	}
}

// CatalogBook stores a new book, rejecting duplicate ISBNs. The stored book
// starts available.
func (s *Service) CatalogBook(ctx context.Context, b book.Book) (book.Book, error) {
	_, err := s.books.GetByISBN(ctx, b.ISBN)
	if err == nil {
		return book.Book{}, ErrDuplicateISBN
	}
	if !errors.Is(err, book.ErrNotFound) {
		return book.Book{}, err
	}

	b.Available = true
	return s.books.Insert(ctx, b)
}

// ListBooks returns all cataloged books.
func (s *Service) ListBooks(ctx context.Context) ([]book.Book, error) {
	return s.books.List(ctx)
}

// GetBook returns a book by ID, or book.ErrNotFound.
func (s *Service) GetBook(ctx context.Context, id string) (book.Book, error) {
	return s.books.GetByID(ctx, id)
}

// BorrowBook opens a loan for a book. It fails with book.ErrNotFound if the
// book does not exist and ErrBookUnavailable if it is already on loan.
//
// The loan record is written before the book flag so that a partial failure
// leaves the book still showing available: a re-attempted borrow can recover,
// at the cost of a possible orphaned loan record. The partial unique index on
// active loans keeps a second borrow from slipping through in that state.
func (s *Service) BorrowBook(ctx context.Context, bookID, borrowerName string) (loan.Loan, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return loan.Loan{}, err
	}

	if !b.Available {
		return loan.Loan{}, &BookUnavailableError{BookTitle: b.Title}
	}

	// Redundant check: guards against the available flag and the active-loan
	// lookup drifting out of sync.
	active, err := s.loans.FindActiveByBookID(ctx, bookID)
	if err == nil {
		return loan.Loan{}, &BookUnavailableError{BookTitle: b.Title, ActiveLoanID: active.ID}
	}
	if !errors.Is(err, loan.ErrNoActiveLoan) {
		return loan.Loan{}, err
	}

	today := loan.DateOf(s.now())
	stored, err := s.loans.Insert(ctx, loan.Loan{
		BookID:       bookID,
		BorrowerName: borrowerName,
		LoanDate:     today,
		DueDate:      today.AddDays(loanPeriodDays),
	})
	if err != nil {
		return loan.Loan{}, err
	}

	if err := s.books.SetAvailable(ctx, bookID, false); err != nil {
		return loan.Loan{}, err
	}
	return stored, nil
}

// ReturnBook closes the active loan for a book and marks the book available
// again. It fails with loan.ErrNoActiveLoan if no active loan exists.
func (s *Service) ReturnBook(ctx context.Context, bookID string) (loan.Loan, error) {
	active, err := s.loans.FindActiveByBookID(ctx, bookID)
	if err != nil {
		return loan.Loan{}, err
	}

	closed, err := s.loans.Close(ctx, active.ID, loan.DateOf(s.now()))
	if err != nil {
		return loan.Loan{}, err
	}

	if err := s.books.SetAvailable(ctx, bookID, true); err != nil {
		return loan.Loan{}, err
	}
	return closed, nil
}

// ListLoans returns the full loan history, active and closed.
func (s *Service) ListLoans(ctx context.Context) ([]loan.Loan, error) {
	return s.loans.List(ctx)
}
