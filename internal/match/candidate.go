package match

import "sort"

// Candidate is a known member name scored against an unknown one.
type Candidate struct {
	Name string

	// Normalized Levenshtein similarity (0-1), higher is better
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// DefaultSuggestionScore is the minimum score for a candidate to be offered
// as a "did you mean" suggestion.
const DefaultSuggestionScore = 0.5

// RankCandidates scores every name in known against target and returns them
// sorted by score (descending), then by name for determinism.
func RankCandidates(target string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	targetNorm := NormalizeIdent(target)
	targetNormStripped := NormalizeIdentWithSuffixStrip(target)

	for _, name := range known {
		score := LevenshteinNormalized(NormalizeIdent(name), targetNorm)

		// use max of regular and suffix-stripped
		if stripped := LevenshteinNormalized(NormalizeIdentWithSuffixStrip(name), targetNormStripped); stripped > score {
			score = stripped
		}

		candidates = append(candidates, Candidate{Name: name, Score: score})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit names from known that look like a misspelling
// of target.
func Suggest(target string, known []string, limit int) []string {
	var out []string

	for _, cand := range RankCandidates(target, known).AboveThreshold(DefaultSuggestionScore).Top(limit) {
		out = append(out, cand.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
