package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
enums:
  MainError:
    Network: [NetworkError, TimeoutError]
    Database: DatabaseError
    Unknown:
  StoreError:
    Missing: ["store.ErrNotFound"]
`

	df, err := Parse("enumfrom.yaml", []byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, df)

	assert.Equal(t, "1", df.Version)
	assert.Equal(t, []string{"MainError", "StoreError"}, df.Names())

	main := df.Enum("MainError")
	require.NotNil(t, main)
	require.Len(t, main.Variants, 3)
	assert.Equal(t, 4, main.Position.Line)
	assert.Equal(t, 3, main.Position.Column)

	// Sequence form keeps order
	network := main.Variant("Network")
	require.NotNil(t, network)
	require.Len(t, network.Targets, 2)
	assert.Equal(t, "NetworkError", network.Targets[0].Value)
	assert.Equal(t, "TimeoutError", network.Targets[1].Value)
	assert.True(t, network.Targets[0].IsString)
	assert.Equal(t, "enumfrom.yaml", network.Targets[0].Position.Filename)
	assert.Equal(t, 5, network.Targets[0].Position.Line)

	// Scalar shorthand
	database := main.Variant("Database")
	require.NotNil(t, database)
	require.Len(t, database.Targets, 1)
	assert.Equal(t, "DatabaseError", database.Targets[0].Value)

	// Null value means an empty list
	unknown := main.Variant("Unknown")
	require.NotNil(t, unknown)
	assert.Empty(t, unknown.Targets)

	store := df.Enum("StoreError")
	require.NotNil(t, store)
	assert.Equal(t, "store.ErrNotFound", store.Variant("Missing").Targets[0].Value)

	assert.Nil(t, df.Enum("Other"))
	assert.Nil(t, main.Variant("Other"))
}

func TestParse_NonStringTargets(t *testing.T) {
	yaml := `
enums:
  MainError:
    Network: [42, true, "ok"]
`

	df, err := Parse("d.yaml", []byte(yaml))
	require.NoError(t, err)

	targets := df.Enum("MainError").Variant("Network").Targets
	require.Len(t, targets, 3)
	assert.False(t, targets[0].IsString)
	assert.Equal(t, "42", targets[0].Value)
	assert.False(t, targets[1].IsString)
	assert.True(t, targets[2].IsString)
}

func TestParse_Defaults(t *testing.T) {
	df, err := Parse("d.yaml", []byte(""))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, df.Version)
	assert.Empty(t, df.Enums)

	df, err = Parse("d.yaml", []byte("enums:\n"))
	require.NoError(t, err)
	assert.Empty(t, df.Enums)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "mappings: []\n",
			wantErr: "field mappings not found",
		},
		{
			name:    "unsupported version",
			yaml:    "version: \"2\"\n",
			wantErr: `unsupported directive file version "2"`,
		},
		{
			name:    "enums not a mapping",
			yaml:    "enums: [MainError]\n",
			wantErr: "d.yaml:1:8: enums must be a mapping",
		},
		{
			name:    "variants not a mapping",
			yaml:    "enums:\n  MainError: [Network]\n",
			wantErr: "enum MainError must map variant names",
		},
		{
			name:    "targets nested",
			yaml:    "enums:\n  MainError:\n    Network: {a: b}\n",
			wantErr: "variant MainError.Network must list source type names",
		},
		{
			name:    "duplicate enum",
			yaml:    "enums:\n  A: {}\n  A: {}\n",
			wantErr: `d.yaml:3:3: duplicate enum "A"`,
		},
		{
			name:    "duplicate variant",
			yaml:    "enums:\n  A:\n    V: x\n    V: y\n",
			wantErr: `duplicate variant "V" in enum A`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("d.yaml", []byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enumfrom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enums:\n  E:\n    V: T\n"), 0o644))

	df, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, df.Path)
	assert.Equal(t, "T", df.Enum("E").Variant("V").Targets[0].Value)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directive file")
}
