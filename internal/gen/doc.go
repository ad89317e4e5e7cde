// Package gen provides deterministic Go code generation for enum
// conversion functions.
//
// Generation approach uses text/template + golang.org/x/tools/imports for
// readable Go code. One file is produced per package, holding one function
// per conversion rule:
//
//	func MainErrorFromNetworkError(src NetworkError) MainError {
//		return Network{fmt.Sprint(src)}
//	}
//
// Codegen patterns:
//   - Wrapped value: the source is stored as is
//   - String-like or no inner value: the source is rendered with fmt.Sprint
//   - Pointer receivers: the variant is constructed by address
package gen
