package storage

import (
	"testing"

	"github.com/poiesic/dorkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"token ID", core.IDFromContent("inurl:")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalOperator(t *testing.T) {
	tests := []struct {
		name string
		op   *core.Operator
	}{
		{
			name: "full operator",
			op: &core.Operator{
				Id:          core.IDFromContent("AROUND(n)"),
				Token:       "AROUND(n)",
				Description: "Find terms within N words of each other",
				Example:     "solar AROUND(3) energy",
				Category:    core.CategoryModifier,
				Usage:       "Proximity search",
				Position:    24,
			},
		},
		{
			name: "optional fields empty",
			op: &core.Operator{
				Id:          core.IDFromContent("*"),
				Token:       "*",
				Description: "Wildcard",
				Category:    core.CategoryModifier,
			},
		},
		{
			name: "unicode text",
			op: &core.Operator{
				Token:       "intext:",
				Description: "Texte dans la page ✓",
				Category:    core.CategoryContent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalOperator(tt.op)

			decoded, err := UnmarshalOperator(data)
			require.NoError(t, err)
			assert.Equal(t, tt.op, decoded)
		})
	}
}

func TestUnmarshalOperator_Invalid(t *testing.T) {
	data := MarshalOperator(&core.Operator{Token: "site:", Description: "Domain", Category: core.CategoryDomain})

	_, err := UnmarshalOperator(data[:3])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
