package analyze

import "go/ast"

//go:generate go tool stringer -type=Shape -linecomment -output=shape_string.go

// Shape classifies the payload of a variant struct. It decides the body of
// the synthesized conversion.
type Shape int

const (
	ShapeNoInner    Shape = iota // no inner value
	ShapeStringLike              // string-like
	ShapeWrapped                 // wrapped value
)

// ClassifyShape inspects the fields of a variant struct.
//
// A struct whose fields are all embedded is tuple-like and is classified by
// its first field: if the first path segment of that field's type is
// "string" the shape is ShapeStringLike, any other named type gives
// ShapeWrapped. Everything else, including empty structs, structs with
// named fields and embedded pointers, is ShapeNoInner. The returned
// expression is the classified field type, nil for ShapeNoInner.
func ClassifyShape(st *ast.StructType) (Shape, ast.Expr) {
	if st == nil || st.Fields == nil || len(st.Fields.List) == 0 {
		return ShapeNoInner, nil
	}

	for _, f := range st.Fields.List {
		if len(f.Names) != 0 {
			return ShapeNoInner, nil
		}
	}

	inner := st.Fields.List[0].Type

	seg, ok := firstPathSegment(inner)
	if !ok {
		return ShapeNoInner, nil
	}

	if seg == "string" {
		return ShapeStringLike, inner
	}

	return ShapeWrapped, inner
}

// firstPathSegment returns the leading identifier of a type path:
// "T" for T, "pkg" for pkg.T, and the same for generic instantiations.
func firstPathSegment(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, true
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			return x.Name, true
		}
	case *ast.IndexExpr:
		return firstPathSegment(t.X)
	case *ast.IndexListExpr:
		return firstPathSegment(t.X)
	case *ast.ParenExpr:
		return firstPathSegment(t.X)
	}

	return "", false
}
