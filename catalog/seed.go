package catalog

import (
	"context"
	"fmt"

	"github.com/poiesic/dorkit/storage"
)

// Seed stores the built-in operators when repo is empty and reports how many
// were written. A repository that already holds operators is left untouched.
func Seed(ctx context.Context, repo storage.OperatorRepository) (int, error) {
	count, err := repo.CountOperators(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count operators: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	added, err := repo.AddOperators(ctx, Builtin()...)
	if err != nil {
		return 0, fmt.Errorf("failed to seed operators: %w", err)
	}
	return len(added), nil
}
