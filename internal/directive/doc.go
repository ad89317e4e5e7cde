// Package directive recognizes enumfrom directive comments.
//
// Directives follow the Go convention for tool directives: a line comment
// with no space after the slashes, a tool prefix and a name.
//
//	//enumfrom:enum
//	type MainError interface{ isMainError() }
//
//	//enumfrom:from("NetworkError", "TimeoutError")
//	type Network struct{ string }
//
// Argument lists are parsed with go/parser, so they follow Go call syntax
// and Go string literal rules.
package directive
