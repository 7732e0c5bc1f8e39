package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Defaults applied when a manual entry omits the optional fields.
const (
	DefaultDescription = "Untitled"
	DefaultCategory    = "Other"
)

const transactionCols = `id, amount, description, category, date, container_id`

// TransactionRepo handles ledger rows. Every query is scoped to a
// container except the per-row Get/Update/Delete operations, which
// address rows by id.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// Insert persists a fully formed row. Used by the import pipeline, which
// supplies its own canonical date.
func (r *TransactionRepo) Insert(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(`+transactionCols+`)
	VALUES(?, ?, ?, ?, ?, ?);
	`, t.ID, t.Amount, t.Description, t.Category, t.Date, t.ContainerID)
	return err
}

// Add persists a manual entry stamped with the current local time and
// returns the row as stored.
func (r *TransactionRepo) Add(ctx context.Context, n NewTransaction) (Transaction, error) {
	t := Transaction{
		ID:          uuid.NewString(),
		Amount:      n.Amount,
		Description: DefaultDescription,
		Category:    DefaultCategory,
		Date:        Now(),
		ContainerID: n.ContainerID,
	}
	if n.Description != nil {
		t.Description = *n.Description
	}
	if n.Category != nil {
		t.Category = *n.Category
	}
	if err := r.Insert(ctx, t); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Get returns a single row by id, or ErrNotFound.
func (r *TransactionRepo) Get(ctx context.Context, id string) (Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionCols+` FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return t, err
}

// List returns a container's rows ordered by date descending. A
// non-positive limit means unbounded.
func (r *TransactionRepo) List(ctx context.Context, containerID string, limit int) ([]Transaction, error) {
	query := `SELECT ` + transactionCols + ` FROM transactions WHERE container_id = ? ORDER BY date DESC`
	args := []interface{}{containerID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.query(ctx, query, args...)
}

// ListForMonth is List filtered to a "YYYY-MM" month prefix.
func (r *TransactionRepo) ListForMonth(ctx context.Context, containerID, month string, limit int) ([]Transaction, error) {
	query := `SELECT ` + transactionCols + ` FROM transactions WHERE container_id = ? AND date LIKE ? ORDER BY date DESC`
	args := []interface{}{containerID, month + "%"}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.query(ctx, query, args...)
}

// Update overwrites the three mutable fields and returns the updated
// row. Date and container are untouched.
func (r *TransactionRepo) Update(ctx context.Context, id string, amount int64, description, category string) (Transaction, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET amount = ?, description = ?, category = ? WHERE id = ?`,
		amount, description, category, id)
	if err != nil {
		return Transaction{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Transaction{}, err
	}
	if n == 0 {
		return Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return r.Get(ctx, id)
}

// Delete removes a single row. Deleting an id that does not exist is a
// silent success.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	return err
}

// MonthlyBalance sums the current calendar month, local clock.
func (r *TransactionRepo) MonthlyBalance(ctx context.Context, containerID string) (int64, error) {
	return r.BalanceForMonth(ctx, containerID, CurrentMonth())
}

// AllTimeBalance sums every row in the container.
func (r *TransactionRepo) AllTimeBalance(ctx context.Context, containerID string) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE container_id = ?`,
		containerID).Scan(&balance)
	return balance, err
}

// BalanceForMonth sums an arbitrary "YYYY-MM" month prefix.
func (r *TransactionRepo) BalanceForMonth(ctx context.Context, containerID, month string) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE container_id = ? AND date LIKE ?`,
		containerID, month+"%").Scan(&balance)
	return balance, err
}

// CategoryTotals aggregates the current month's expenses by category.
func (r *TransactionRepo) CategoryTotals(ctx context.Context, containerID string) ([]CategoryTotal, error) {
	return r.CategoryTotalsForMonth(ctx, containerID, CurrentMonth())
}

// CategoryTotalsForMonth sums expense rows (amount < 0) per category for
// a month, largest expense first.
func (r *TransactionRepo) CategoryTotalsForMonth(ctx context.Context, containerID, month string) ([]CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT category, SUM(amount) AS total
	FROM transactions
	WHERE container_id = ? AND date LIKE ? AND amount < 0
	GROUP BY category
	ORDER BY total ASC;
	`, containerID, month+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

// AvailableMonths returns the distinct "YYYY-MM" prefixes present in a
// container, newest first.
func (r *TransactionRepo) AvailableMonths(ctx context.Context, containerID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT DISTINCT strftime('%Y-%m', date) AS month
	FROM transactions
	WHERE container_id = ?
	ORDER BY month DESC;
	`, containerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *TransactionRepo) query(ctx context.Context, query string, args ...interface{}) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTransaction(row scanner) (Transaction, error) {
	var t Transaction
	if err := row.Scan(&t.ID, &t.Amount, &t.Description, &t.Category, &t.Date, &t.ContainerID); err != nil {
		return Transaction{}, err
	}
	return t, nil
}
