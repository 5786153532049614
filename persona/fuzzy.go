package persona

import (
	"strings"

	"github.com/xrash/smetrics"
)

// MatchScore returns a 0-100 lexical similarity score between a query and
// a category label. Comparison is case-insensitive. The score is the best
// of a full-string ratio and a partial ratio, so a short label embedded in
// a longer query still scores high.
func MatchScore(query, category string) int {
	a := strings.ToLower(strings.TrimSpace(query))
	b := strings.ToLower(strings.TrimSpace(category))

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	full := ratio(a, b)
	partial := partialRatio(a, b)
	if partial > full {
		return partial
	}
	return full
}

// ratio is a normalized Levenshtein similarity in [0, 100].
func ratio(a, b string) int {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 100
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 1)
	return (longest - dist) * 100 / longest
}

// partialRatio slides the shorter string across the longer one and returns
// the best window ratio. Equivalent in spirit to fuzzy partial matching.
func partialRatio(a, b string) int {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := longer[i : i+len(shorter)]
		if score := ratio(shorter, window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}
