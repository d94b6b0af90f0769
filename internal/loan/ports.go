package loan

import (
	"context"
)

// Repository defines the contract for loan data storage.
type Repository interface {
	// Insert stores a new loan and returns it with the assigned ID.
	Insert(ctx context.Context, l Loan) (Loan, error)
	// List returns the full loan history, active and closed.
	List(ctx context.Context) ([]Loan, error)
	// FindActiveByBookID returns the loan for the book whose return date is
	// unset, or ErrNoActiveLoan.
	FindActiveByBookID(ctx context.Context, bookID string) (Loan, error)
	// Close sets the return date on a loan and returns the updated record,
	// or ErrNoActiveLoan if the loan does not exist or is already closed.
	Close(ctx context.Context, id string, returnDate Date) (Loan, error)
}
