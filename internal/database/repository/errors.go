package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound reports an update or delete against an id that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrProtected reports an attempt to delete the default container.
	ErrProtected = errors.New("protected resource")

	// ErrDuplicateName reports a unique-name collision.
	ErrDuplicateName = errors.New("name already exists")
)

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
