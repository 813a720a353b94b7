package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Strategy selects how two strings are compared.
type Strategy string

const (
	// WholeString compares the full strings with a weighted edit-distance
	// style score, tolerant of minor typos and word reordering.
	WholeString Strategy = "whole_string"
	// Partial scores how well the shorter string is contained in the longer
	// one, for catalog terms embedded in a longer utterance.
	Partial Strategy = "partial"
	// TokenSet compares the word sets, insensitive to order and duplicates.
	TokenSet Strategy = "token_set"
)

// Match is one scored candidate.
type Match struct {
	Candidate string
	Score     int
}

// Score compares query against candidate under the given strategy and
// returns a score in [0,100]. Inputs are lower-cased and trimmed first so
// scoring is case-insensitive.
func Score(query, candidate string, s Strategy) int {
	a := strings.ToLower(strings.TrimSpace(query))
	b := strings.ToLower(strings.TrimSpace(candidate))
	if a == "" || b == "" {
		return 0
	}
	switch s {
	case Partial:
		return fuzzy.PartialRatio(a, b)
	case TokenSet:
		return fuzzy.TokenSetRatio(a, b)
	default:
		return fuzzy.WRatio(a, b)
	}
}

// BestMatch scores query against every candidate and returns the best one.
// Ties are broken by the first-encountered candidate in input order. The
// second return value is false when candidates is empty.
func BestMatch(query string, candidates []string, s Strategy) (Match, bool) {
	best := Match{Score: -1}
	for _, c := range candidates {
		if sc := Score(query, c, s); sc > best.Score {
			best = Match{Candidate: c, Score: sc}
		}
	}
	if best.Score < 0 {
		return Match{}, false
	}
	return best, true
}
