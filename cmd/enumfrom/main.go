// Command enumfrom generates conversion functions into sealed-interface
// enums.
//
// An enum is an interface marked with //enumfrom:enum. Each struct type
// implementing it is a variant, and each //enumfrom:from("T") directive on
// a variant yields a function turning a T into that variant:
//
//	//enumfrom:enum
//	type MainError interface{ isMainError() }
//
//	//enumfrom:from("NetworkError")
//	type Network struct{ string }
//
// generates
//
//	func MainErrorFromNetworkError(src NetworkError) MainError {
//		return Network{fmt.Sprint(src)}
//	}
//
// Usage:
//
//	enumfrom [flags] <command> [packages]
//
// Typically invoked through a //go:generate enumfrom gen line.
package main

func main() {
	Execute()
}
