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


package core

import (
	"fmt"
	"slices"
)

// ValidateOperator validates an Operator according to domain rules.
//
// Validation rules:
//   - Token must not be empty
//   - Description must not be empty
//   - Category must be one of the known categories
//
// NOT validated:
//   - Example and Usage (optional reference text)
//   - ID (recomputed from the token on insert)
func ValidateOperator(op *Operator) error {
	if op == nil {
		return fmt.Errorf("%w: operator is nil", ErrInvalidOperator)
	}

	if op.Token == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOperator, ErrEmptyToken)
	}

	if op.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOperator, ErrEmptyDescription)
	}

	if err := ValidateCategory(op.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperator, err)
	}

	return nil
}

// ValidateCategory validates that a Category has a known value.
func ValidateCategory(category Category) error {
	if !slices.Contains(categories, category) {
		return fmt.Errorf("%w: value %q", ErrInvalidCategory, category)
	}
	return nil
}
