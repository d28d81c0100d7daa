package badger

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/dorkit/core"
	"github.com/poiesic/dorkit/storage"
)

// OperatorRepository implements storage.OperatorRepository using BadgerDB.
type OperatorRepository struct {
	backend     *Backend
	logger      *slog.Logger
	ownsBackend bool
}

var _ storage.OperatorRepository = (*OperatorRepository)(nil)

// NewOperatorRepository creates a repository on top of an open backend.
// The caller keeps ownership of the backend.
func NewOperatorRepository(backend *Backend) (storage.OperatorRepository, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	return &OperatorRepository{
		backend: backend,
		logger:  backend.logger,
	}, nil
}

// Close releases resources. The backend is closed only when the repository
// opened it itself.
func (r *OperatorRepository) Close() error {
	if r.ownsBackend {
		return r.backend.Close()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *OperatorRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddOperators validates and stores operators, replacing entries with the same token.
func (r *OperatorRepository) AddOperators(ctx context.Context, operators ...*core.Operator) ([]*core.Operator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, op := range operators {
		if err := core.ValidateOperator(op); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		next := -1
		for _, op := range operators {
			op.Id = core.IDFromContent(op.Token)
			key := makeOperatorKey(op.Id)

			old, err := readOperator(tx, key)
			if err != nil {
				return err
			}

			if old != nil && old.Category != op.Category {
				if err := tx.Delete(makeOperatorCategoryKey(old.Category, old.Id)); err != nil {
					return err
				}
			}

			if op.Position == 0 {
				if old != nil {
					op.Position = old.Position
				} else {
					if next < 0 {
						if next, err = maxPosition(tx); err != nil {
							return err
						}
					}
					next++
					op.Position = next
				}
			}

			if err := tx.Set(key, storage.MarshalOperator(op)); err != nil {
				return err
			}
			if err := tx.Set(makeOperatorTokenKey(op.Token), storage.MarshalID(op.Id)); err != nil {
				return err
			}
			if err := tx.Set(makeOperatorCategoryKey(op.Category, op.Id), []byte{}); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to add operators: %w", err)
	}

	r.logger.Debug("stored operators", "count", len(operators))
	return operators, nil
}

// GetOperator retrieves a single operator by ID.
func (r *OperatorRepository) GetOperator(ctx context.Context, id core.ID) (*core.Operator, error) {
	var result *core.Operator
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readOperator(tx, makeOperatorKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindOperatorByToken finds an operator by its exact token.
func (r *OperatorRepository) FindOperatorByToken(ctx context.Context, token string) (*core.Operator, error) {
	var result *core.Operator
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeOperatorTokenKey(token))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readOperator(tx, makeOperatorKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListOperators returns every operator ordered by Position.
func (r *OperatorRepository) ListOperators(ctx context.Context) ([]*core.Operator, error) {
	var results []*core.Operator
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeOperatorRecordPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var op *core.Operator
			err := iter.Item().Value(func(val []byte) error {
				var err error
				op, err = storage.UnmarshalOperator(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, op)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortByPosition(results)
	return results, nil
}

// ListOperatorsByCategory returns the operators of one category ordered by Position.
func (r *OperatorRepository) ListOperatorsByCategory(ctx context.Context, category core.Category) ([]*core.Operator, error) {
	if err := core.ValidateCategory(category); err != nil {
		return nil, err
	}

	var results []*core.Operator
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makePartialOperatorCategoryKey(category)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			id, ok := idFromCategoryKey(iter.Item().Key())
			if !ok {
				continue
			}
			op, err := readOperator(tx, makeOperatorKey(id))
			if err != nil {
				return err
			}
			if op != nil {
				results = append(results, op)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortByPosition(results)
	return results, nil
}

// SearchOperators filters by category and a case-insensitive substring of
// token or description.
func (r *OperatorRepository) SearchOperators(ctx context.Context, query string, category core.Category) ([]*core.Operator, error) {
	var candidates []*core.Operator
	var err error
	if category == "" {
		candidates, err = r.ListOperators(ctx)
	} else {
		candidates, err = r.ListOperatorsByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	results := candidates[:0]
	for _, op := range candidates {
		if op.Matches(query) {
			results = append(results, op)
		}
	}
	return results, nil
}

// CountOperators returns the number of stored operators.
func (r *OperatorRepository) CountOperators(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeOperatorRecordPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Helper methods

// readOperator reads an operator from the transaction.
// Returns nil without error when the key does not exist.
func readOperator(tx *badger.Txn, key []byte) (*core.Operator, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var op *core.Operator
	err = item.Value(func(val []byte) error {
		var err error
		op, err = storage.UnmarshalOperator(val)
		return err
	})
	return op, err
}

// maxPosition returns the highest Position currently stored, or 0.
func maxPosition(tx *badger.Txn) (int, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = makeOperatorRecordPrefix()
	iter := tx.NewIterator(opts)
	defer iter.Close()

	highest := 0
	for iter.Rewind(); iter.Valid(); iter.Next() {
		err := iter.Item().Value(func(val []byte) error {
			op, err := storage.UnmarshalOperator(val)
			if err != nil {
				return err
			}
			highest = max(highest, op.Position)
			return nil
		})
		if err != nil {
			return 0, err
		}
	}
	return highest, nil
}

func sortByPosition(ops []*core.Operator) {
	slices.SortFunc(ops, func(a, b *core.Operator) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.Token, b.Token)
	})
}
