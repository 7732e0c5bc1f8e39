package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// CategoryRepo handles the shared category vocabulary. Categories are
// referenced by name from transactions; there is no foreign key, so a
// deleted category leaves its label behind on existing rows.
type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// List returns all categories, defaults first, then alphabetical.
func (r *CategoryRepo) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, is_default FROM categories ORDER BY is_default DESC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		var isDefault int
		if err := rows.Scan(&c.ID, &c.Name, &isDefault); err != nil {
			return nil, err
		}
		c.IsDefault = isDefault == 1
		out = append(out, c)
	}
	return out, rows.Err()
}

// Add inserts a user category. Duplicate names fail.
func (r *CategoryRepo) Add(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO categories(name, is_default) VALUES (?, 0)`, name)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("category %q: %w", name, ErrDuplicateName)
	}
	return err
}

// Delete removes a user category by name. Default categories are
// filtered out of the statement, so deleting one is a silent no-op
// rather than an error.
func (r *CategoryRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = ? AND is_default = 0`, name)
	return err
}
