// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dorkit

import (
	"context"
	"log/slog"

	"github.com/poiesic/dorkit/catalog"
	"github.com/poiesic/dorkit/storage"
	"github.com/poiesic/dorkit/storage/badger"
)

// Library owns the operator catalog and the storage behind it.
type Library struct {
	backend   *badger.Backend
	operators storage.OperatorRepository
	logger    *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	logger *slog.Logger
	seed   bool
}

// WithLogger sets the logger used by the library and its storage.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(o *libraryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutSeed opens the catalog without storing the built-in operators.
func WithoutSeed() LibraryOption {
	return func(o *libraryOptions) {
		o.seed = false
	}
}

// OpenLibrary opens the operator catalog at path and seeds it with the
// built-in operators if it is empty. An empty path keeps the catalog in memory.
func OpenLibrary(path string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		logger: slog.Default(),
		seed:   true,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(path, path == "", badger.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	operators, err := badger.NewOperatorRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	if options.seed {
		n, err := catalog.Seed(context.Background(), operators)
		if err != nil {
			operators.Close()
			backend.Close()
			return nil, err
		}
		if n > 0 {
			options.logger.Info("seeded operator catalog", "count", n)
		}
	}

	return &Library{
		backend:   backend,
		operators: operators,
		logger:    options.logger,
	}, nil
}

// Close releases the catalog.
func (l *Library) Close() error {
	if err := l.operators.Close(); err != nil {
		l.logger.Error("error closing operator repository", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Operators returns the operator catalog.
func (l *Library) Operators() storage.OperatorRepository {
	return l.operators
}
