package loan

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const loanColumns = `id, book_id, borrower_name, loan_date, due_date, return_date`

func scanLoan(row pgx.Row) (Loan, error) {
	var (
		l          Loan
		loanDate   time.Time
		dueDate    time.Time
		returnDate *time.Time
	)
	if err := row.Scan(&l.ID, &l.BookID, &l.BorrowerName, &loanDate, &dueDate, &returnDate); err != nil {
		return Loan{}, err
	}
	l.LoanDate = DateOf(loanDate)
	l.DueDate = DateOf(dueDate)
	if returnDate != nil {
		d := DateOf(*returnDate)
		l.ReturnDate = &d
	}
	return l, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, l Loan) (Loan, error) {
	const query = `
		INSERT INTO loans (id, book_id, borrower_name, loan_date, due_date)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, l.BookID, l.BorrowerName, l.LoanDate.Time(), l.DueDate.Time()).Scan(&l.ID)
	if err != nil {
		return Loan{}, err
	}
	return l, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Loan, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		ORDER BY loan_date ASC, id ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindActiveByBookID(ctx context.Context, bookID string) (Loan, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE book_id = $1 AND return_date IS NULL
		LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	l, err := scanLoan(r.db.QueryRow(timeoutCtx, query, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNoActiveLoan
		}
		return Loan{}, err
	}
	return l, nil
}

func (r *PostgresRepo) Close(ctx context.Context, id string, returnDate Date) (Loan, error) {
	const query = `
		UPDATE loans
		SET return_date = $2
		WHERE id = $1 AND return_date IS NULL
		RETURNING ` + loanColumns + `
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	l, err := scanLoan(r.db.QueryRow(timeoutCtx, query, id, returnDate.Time()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNoActiveLoan
		}
		return Loan{}, err
	}
	return l, nil
}
