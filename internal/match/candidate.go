package match

import "sort"

// Suggestion thresholds.
const (
	// DefaultMinScore is the lowest score worth suggesting.
	DefaultMinScore = 0.6
	// DefaultMinGap is the score lead the best candidate needs over the
	// runner-up; closer races are ambiguous and suggest nothing.
	DefaultMinGap = 0.05
)

// Candidate is a known name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score, best first.
type CandidateList []Candidate

// Rank scores every name in names against name. Duplicates and exact
// matches of name are skipped.
func Rank(name string, names []string) CandidateList {
	seen := make(map[string]bool, len(names))

	var out CandidateList

	for _, n := range names {
		if n == name || seen[n] {
			continue
		}

		seen[n] = true
		out = append(out, Candidate{Name: n, Score: Score(name, n)})
	}

	sort.Sort(out)

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by score descending, then by name.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate, or nil when there is none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Confident returns the best candidate if it scores at least minScore and
// leads the runner-up by at least minGap.
func (c CandidateList) Confident(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Suggest returns the name in names that name was most likely meant to be.
func Suggest(name string, names []string) (string, bool) {
	best := Rank(name, names).Confident(DefaultMinScore, DefaultMinGap)
	if best == nil {
		return "", false
	}

	return best.Name, true
}

// Hint formats the suggestion for name as a message suffix, or returns ""
// when there is none.
func Hint(name string, names []string) string {
	s, ok := Suggest(name, names)
	if !ok {
		return ""
	}

	return "; did you mean " + s + "?"
}
