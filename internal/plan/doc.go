// Package plan extracts conversion rules from inspected enums.
//
// Extraction pipeline:
//  1. Inspect a package → enums with their variants and directives
//  2. Load the directive file (optional) → extra targets per variant
//  3. For each enum, for each variant in declaration order:
//     - Parse every //enumfrom:from directive, then append file targets
//     - Validate each target and resolve qualified names to imports
//  4. Emit diagnostics (malformed directives, empty targets, missing
//     directives, duplicate conversions)
//
// The resulting PackagePlan is consumed by the gen package.
package plan
