package analyze

import (
	"go/ast"
	"go/parser"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		src   string
		shape Shape
		inner string
	}{
		{"struct{}", ShapeNoInner, ""},
		{"struct{ string }", ShapeStringLike, "string"},
		{"struct{ string; int }", ShapeStringLike, "string"},
		{"struct{ string `json:\"msg\"` }", ShapeStringLike, "string"},
		{"struct{ DatabaseError }", ShapeWrapped, "DatabaseError"},
		{"struct{ url.Error }", ShapeWrapped, "url.Error"},
		{"struct{ stringer.Value }", ShapeWrapped, "stringer.Value"},
		{"struct{ Box[int] }", ShapeWrapped, "Box[int]"},
		{"struct{ Pair[int, string] }", ShapeWrapped, "Pair[int, string]"},
		{"struct{ *DatabaseError }", ShapeNoInner, ""},
		{"struct{ Msg string }", ShapeNoInner, ""},
		{"struct{ DatabaseError; Msg string }", ShapeNoInner, ""},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.src)
			require.NoError(t, err)

			st, ok := expr.(*ast.StructType)
			require.True(t, ok)

			shape, inner := ClassifyShape(st)
			assert.Equal(t, tt.shape, shape)

			if tt.inner == "" {
				assert.Nil(t, inner)
			} else {
				assert.Equal(t, tt.inner, types.ExprString(inner))
			}
		})
	}

	shape, inner := ClassifyShape(nil)
	assert.Equal(t, ShapeNoInner, shape)
	assert.Nil(t, inner)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "no inner value", ShapeNoInner.String())
	assert.Equal(t, "string-like", ShapeStringLike.String())
	assert.Equal(t, "wrapped value", ShapeWrapped.String())
	assert.Equal(t, "Shape(7)", Shape(7).String())
}
