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

import "errors"

// Domain validation errors
var (
	// ErrInvalidOperator indicates an Operator failed validation.
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrEmptyToken indicates the operator Token field is empty.
	ErrEmptyToken = errors.New("operator token cannot be empty")

	// ErrEmptyDescription indicates the operator Description field is empty.
	ErrEmptyDescription = errors.New("operator description cannot be empty")

	// ErrInvalidCategory indicates an unknown Category value.
	ErrInvalidCategory = errors.New("invalid category")
)
