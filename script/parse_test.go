package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/me21jarus/dsa/core"
	"github.com/me21jarus/dsa/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Valid decodes fields and resolves the variant.
func TestParse_Valid(t *testing.T) {
	sc, err := script.Parse([]byte(`
name: demo
variant: Doubly_Linear
initial: [1, 2]
steps:
  - {op: insert_at, position: 2, value: 9}
  - {op: print}
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)
	assert.Equal(t, core.DoublyLinear, sc.Kind())
	assert.Equal(t, []int{1, 2}, sc.Initial)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, "insert_at position=2 value=9", sc.Steps[0].String())
}

// TestParse_Errors checks each validation class.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", script.ErrInvalidScript},
		{"bad yaml", "variant: [", script.ErrInvalidScript},
		{"unknown key", "variant: singly-linear\nsteps: []\nextra: 1\n", script.ErrInvalidScript},
		{"unknown variant", "variant: tree\nsteps: []\n", core.ErrUnknownVariant},
		{"unknown op", "variant: singly-linear\nsteps:\n  - {op: sort}\n", script.ErrUnknownOp},
		{"ring op on list", "variant: doubly-linear\nsteps:\n  - {op: append, value: 1}\n", script.ErrUnsupportedOp},
		{"list op on ring", "variant: singly-circular\nsteps:\n  - {op: delete_at, position: 1}\n", script.ErrUnsupportedOp},
		{"missing value", "variant: singly-linear\nsteps:\n  - {op: insert_head}\n", script.ErrMissingField},
		{"missing target", "variant: singly-circular\nsteps:\n  - {op: insert_after, value: 1}\n", script.ErrMissingField},
		{"missing position", "variant: singly-linear\nsteps:\n  - {op: delete_at}\n", script.ErrMissingField},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad reads from disk and defaults the name to the path.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: singly-linear\nsteps:\n  - {op: len}\n"), 0o600))

	sc, err := script.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, sc.Name)

	_, err = script.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestDemo_Unknown rejects a variant without a shipped demo.
func TestDemo_Unknown(t *testing.T) {
	_, err := script.Demo(core.Variant(17))
	assert.ErrorIs(t, err, core.ErrUnknownVariant)
}
