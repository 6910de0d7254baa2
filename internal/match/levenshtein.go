package match

// Levenshtein returns the edit distance between a and b, counted in bytes.
func Levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	// row[i] is the distance between a[:i] and the prefix of b seen so far
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			above := row[i]
			row[i] = min(above+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(a)]
}

// LevenshteinNormalized scores the similarity of a and b from 0 (nothing in
// common) to 1 (identical).
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
