package storage

import (
	"context"

	"github.com/poiesic/dorkit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// OperatorRepository provides operations for the search operator catalog.
type OperatorRepository interface {
	Repository
	// AddOperators validates and stores one or more operators.
	// IDs are derived from the token (IDFromContent), so adding an operator
	// whose token already exists replaces the stored entry.
	// Returns the operators with IDs populated.
	AddOperators(ctx context.Context, operators ...*core.Operator) ([]*core.Operator, error)

	// GetOperator retrieves a single operator by ID.
	// Returns ErrNotFound if the operator doesn't exist.
	GetOperator(ctx context.Context, id core.ID) (*core.Operator, error)

	// FindOperatorByToken finds an operator by its exact token.
	// Returns ErrNotFound if no matching operator exists.
	FindOperatorByToken(ctx context.Context, token string) (*core.Operator, error)

	// ListOperators returns every operator ordered by Position.
	ListOperators(ctx context.Context) ([]*core.Operator, error)

	// ListOperatorsByCategory returns the operators of one category ordered by Position.
	ListOperatorsByCategory(ctx context.Context, category core.Category) ([]*core.Operator, error)

	// SearchOperators returns operators whose token or description contains
	// query, ignoring case. An empty category searches every category.
	SearchOperators(ctx context.Context, query string, category core.Category) ([]*core.Operator, error)

	// CountOperators returns the number of stored operators.
	CountOperators(ctx context.Context) (int, error)
}
