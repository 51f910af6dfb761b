package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity scores two strings on a 0..100 scale. Containment either way
// counts as an exact hit; otherwise the score is a normalized edit distance,
// taking the best per-token alignment so "nike shoes" still lines up with
// "Nike Revolution 6".
func Similarity(query, field string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	field = strings.ToLower(strings.TrimSpace(field))
	if query == "" || field == "" {
		return 0
	}
	if strings.Contains(field, query) || strings.Contains(query, field) {
		return 100
	}

	best := editSimilarity(query, field)
	for _, qt := range strings.Fields(query) {
		for _, ft := range strings.Fields(field) {
			if s := editSimilarity(qt, ft); s > best {
				best = s
			}
		}
	}
	return best
}

func editSimilarity(a, b string) float64 {
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	if dist >= longest {
		return 0
	}
	return 100 * (1 - float64(dist)/float64(longest))
}
