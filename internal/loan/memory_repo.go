package loan

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory Repository used by tests and local development.
type MemoryRepo struct {
	mu    sync.Mutex
	loans []Loan
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(_ context.Context, l Loan) (Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = uuid.NewString()
	r.loans = append(r.loans, l)
	return l, nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Loan, len(r.loans))
	copy(out, r.loans)
	return out, nil
}

func (r *MemoryRepo) FindActiveByBookID(_ context.Context, bookID string) (Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.loans {
		if l.BookID == bookID && l.Active() {
			return l, nil
		}
	}
	return Loan{}, ErrNoActiveLoan
}

func (r *MemoryRepo) Close(_ context.Context, id string, returnDate Date) (Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.loans {
		if l.ID == id && l.Active() {
			d := returnDate
			l.ReturnDate = &d
			r.loans[i] = l
			return l, nil
		}
	}
	return Loan{}, ErrNoActiveLoan
}
