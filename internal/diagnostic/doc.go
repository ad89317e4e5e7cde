// Package diagnostic provides positioned errors, warnings and notes
// produced while reading enum declarations and their directives.
//
// Key capabilities:
//   - Source spans for every diagnostic (token.Pos for analyzers,
//     token.Position for terminal output and non-Go inputs)
//   - Stable machine-readable codes
//   - A combined error value for callers that only care about failure
package diagnostic
