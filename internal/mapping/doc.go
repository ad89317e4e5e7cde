// Package mapping provides the YAML directive file: a way to declare
// enum conversions without touching the Go source of the enum.
//
// # Schema Overview
//
// The directive file has the following structure:
//
//	version: "1"
//	enums:
//	  MainError:                       # enum (sealed interface) name
//	    Network: [NetworkError]        # variant: list of source type names
//	    Database:
//	      - DatabaseError
//	      - store.ErrNotFound          # qualified by an import of the variant's file
//	    Timeout: TimeoutError          # a single name needs no list
//
// Every enum listed here is generated as if it carried //enumfrom:enum.
// Targets listed for a variant are appended after the variant's own
// //enumfrom:from directives. Key order is preserved.
//
// Entries keep their line and column so that problems are reported at the
// offending YAML node.
package mapping
