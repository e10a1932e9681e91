// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// existenceCheck reports whether the row with the given ID exists.
type existenceCheck func(ctx context.Context, id uuid.UUID) (bool, error)

// ensureExists guards writes that reference another aggregate by ID. It runs
// the check and returns the caller's missing error when the referenced row is
// absent, so each write path keeps its own user-facing message.
func ensureExists(ctx context.Context, id uuid.UUID, check existenceCheck, missing error) error {
	exists, err := check(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check referenced row existence")
	}
	if !exists {
		return missing
	}

	return nil
}
