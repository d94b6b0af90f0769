package book

import (
	"context"
)

// Repository defines the contract for book data storage.
// No ISBN uniqueness is assumed at this layer; the library service enforces it.
type Repository interface {
	// Insert stores a new book and returns it with the assigned ID.
	Insert(ctx context.Context, b Book) (Book, error)
	// GetByID returns a book by its ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (Book, error)
	// GetByISBN returns a book by its ISBN, or ErrNotFound.
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	// List returns all books.
	List(ctx context.Context) ([]Book, error)
	// SetAvailable persists the availability flag, or ErrNotFound.
	SetAvailable(ctx context.Context, id string, available bool) error
}
