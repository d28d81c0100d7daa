package core

import (
	"errors"
	"testing"
)

func TestValidateOperator(t *testing.T) {
	tests := []struct {
		name    string
		op      *Operator
		wantErr error
	}{
		{
			name:    "valid operator",
			op:      NewOperator("site:", "Search within a specific domain", "site:example.com", CategoryDomain, ""),
			wantErr: nil,
		},
		{
			name:    "valid operator without example",
			op:      &Operator{Token: "OR", Description: "Either term", Category: CategoryLogic},
			wantErr: nil,
		},
		{
			name:    "nil operator",
			op:      nil,
			wantErr: ErrInvalidOperator,
		},
		{
			name:    "empty token",
			op:      &Operator{Description: "x", Category: CategoryLogic},
			wantErr: ErrEmptyToken,
		},
		{
			name:    "empty description",
			op:      &Operator{Token: "OR", Category: CategoryLogic},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "unknown category",
			op:      &Operator{Token: "OR", Description: "x", Category: "Misc"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "empty category",
			op:      &Operator{Token: "OR", Description: "x"},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperator(tt.op)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateOperator() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateOperator() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidOperator) {
				t.Errorf("ValidateOperator() error = %v, want wrapped %v", err, ErrInvalidOperator)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	for _, c := range Categories() {
		if err := ValidateCategory(c); err != nil {
			t.Errorf("ValidateCategory(%q) unexpected error: %v", c, err)
		}
	}
	if err := ValidateCategory("domain"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("ValidateCategory() is case sensitive, got %v", err)
	}
}
