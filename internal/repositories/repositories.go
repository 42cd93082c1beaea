package repositories

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/dadrocktabs/api/internal/shared"
)

// mapConstraint converts a SQLite unique-constraint violation into
// [shared.ErrDuplicate] so callers can treat "already exists" as a branch
// rather than parsing driver messages. Other errors pass through wrapped.
func mapConstraint(err error, context string) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%s: %w", context, shared.ErrDuplicate)
	}

	return fmt.Errorf("%s: %w", context, err)
}
