package usecase

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// closestMatch returns the candidate nearest to name, or "" when nothing is
// close enough to be a plausible typo.
func closestMatch(name string, candidates []string) string {
	name = strings.ToLower(name)
	best, bestDist := "", -1
	for _, c := range candidates {
		if c == "" {
			continue
		}
		d := levenshtein.ComputeDistance(name, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(name) {
		return ""
	}
	return best
}

func maxSuggestDistance(name string) int {
	if n := len(name) / 3; n > 1 {
		return n
	}
	return 1
}

func didYouMean(name string, candidates []string) string {
	if m := closestMatch(name, candidates); m != "" {
		return " (did you mean " + `"` + m + `"` + "?)"
	}
	return ""
}
