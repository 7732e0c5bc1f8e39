package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureContainerColumn upgrades a transactions table that predates the
// container concept. Historical rows are repointed at the default
// container, which must already be seeded. Running this against a current
// schema is a no-op.
func EnsureContainerColumn(ctx context.Context, db *sql.DB) error {
	has, err := hasColumn(ctx, db, "transactions", "container_id")
	if err != nil {
		return err
	}
	if !has {
		err := WithTx(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE transactions ADD COLUMN container_id TEXT REFERENCES containers(id) ON DELETE CASCADE`); err != nil {
				return fmt.Errorf("add container_id column: %w", err)
			}
			if _, err := tx.Exec(`UPDATE transactions SET container_id = (SELECT id FROM containers WHERE is_default = 1) WHERE container_id IS NULL`); err != nil {
				return fmt.Errorf("backfill container_id: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	// Created here rather than in the migration because a legacy table
	// does not have the column until the patch above runs.
	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_transactions_container ON transactions(container_id)`)
	return err
}

func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid, notnull, pk int
			name, ctype      string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
