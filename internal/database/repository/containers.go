package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ContainerRepo handles containers.
type ContainerRepo struct {
	db *sql.DB
}

func NewContainerRepo(db *sql.DB) *ContainerRepo { return &ContainerRepo{db: db} }

// List returns all containers, default first, then by creation time.
func (r *ContainerRepo) List(ctx context.Context) ([]Container, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, is_default FROM containers ORDER BY is_default DESC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Container
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get returns a single container by id, or ErrNotFound.
func (r *ContainerRepo) Get(ctx context.Context, id string) (Container, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, is_default FROM containers WHERE id = ?`, id)
	c, err := scanContainer(row)
	if err == sql.ErrNoRows {
		return Container{}, ErrNotFound
	}
	return c, err
}

// Create inserts a new non-default container with the current timestamp.
func (r *ContainerRepo) Create(ctx context.Context, name string) (Container, error) {
	c := Container{ID: uuid.NewString(), Name: name, CreatedAt: Now()}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO containers(id, name, created_at, is_default) VALUES (?, ?, ?, 0)`,
		c.ID, c.Name, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Container{}, fmt.Errorf("container %q: %w", name, ErrDuplicateName)
		}
		return Container{}, err
	}
	return c, nil
}

// Rename updates a container's name and returns the updated record.
func (r *ContainerRepo) Rename(ctx context.Context, id, name string) (Container, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE containers SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return Container{}, fmt.Errorf("container %q: %w", name, ErrDuplicateName)
		}
		return Container{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Container{}, err
	}
	if n == 0 {
		return Container{}, fmt.Errorf("container %s: %w", id, ErrNotFound)
	}
	return r.Get(ctx, id)
}

// Delete removes a container and, via the cascade, every transaction
// scoped to it. The default container cannot be deleted.
func (r *ContainerRepo) Delete(ctx context.Context, id string) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.IsDefault {
		return fmt.Errorf("container %q is the default: %w", c.Name, ErrProtected)
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM containers WHERE id = ?`, id)
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanContainer(row scanner) (Container, error) {
	var c Container
	var isDefault int
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &isDefault); err != nil {
		return Container{}, err
	}
	c.IsDefault = isDefault == 1
	return c, nil
}
