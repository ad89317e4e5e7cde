// Package match ranks identifiers by how close they are to a misspelled
// name. Diagnostics use it to suggest the variant, package or type the
// user most likely meant.
//
// Key functions:
//   - NormalizeIdent: folds an identifier for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidate names by similarity
//   - Suggest: picks a single unambiguous suggestion
package match
