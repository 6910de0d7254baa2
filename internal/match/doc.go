// Package match provides identifier normalization, Levenshtein distance
// calculation and candidate ranking for member names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known member names against an unknown one
//   - Suggest: "did you mean" names for a path segment that did not resolve
package match
