package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/danielb254/Spent/internal/database/repository"
)

// DefaultContainerName is the container created on first initialization.
const DefaultContainerName = "Personal"

// defaultCategories are seeded once when the registry is empty. They are
// immutable afterwards: delete requests against them are filtered no-ops.
var defaultCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Income",
	"Other",
}

// SeedDefaults ensures the default container and baseline categories exist.
// It is idempotent and safe to run on every startup: each table is seeded
// only when empty.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM containers`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		_, err := db.ExecContext(ctx,
			`INSERT INTO containers(id, name, created_at, is_default) VALUES (?, ?, ?, 1)`,
			uuid.NewString(), DefaultContainerName, repository.Now())
		if err != nil {
			return err
		}
	}

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return WithTx(db, func(tx *sql.Tx) error {
			stmt, err := tx.Prepare(`INSERT INTO categories(name, is_default) VALUES (?, 1)`)
			if err != nil {
				return err
			}
			defer stmt.Close()
			for _, name := range defaultCategories {
				if _, err := stmt.Exec(name); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return nil
}
