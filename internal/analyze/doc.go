// Package analyze provides package loading and enum discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// sealed interfaces marked with //enumfrom:enum and the struct types
// that implement them.
//
// Key types:
//   - Package: syntax and type information for one Go package
//   - EnumInfo: a sealed interface and its variants in declaration order
//   - VariantInfo: one implementing struct, its directives and payload Shape
package analyze
