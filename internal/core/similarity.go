package core

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultSimilarityThreshold is the token-sort ratio (0-100) above which
// two symptom strings are treated as the same complaint.
const DefaultSimilarityThreshold = 85

// normalizeSymptom trims and lowercases a symptom string.
func normalizeSymptom(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// nearDuplicate reports whether two normalized symptom strings refer to
// the same complaint. Token-sort ratio makes the comparison insensitive
// to word order ("mild fever" vs "fever, mild"). This is the single
// similarity contract used by both the extractor merge and the summary
// view.
func nearDuplicate(a, b string, threshold int) bool {
	if a == b {
		return true
	}
	return fuzzy.TokenSortRatio(a, b) > threshold
}

// MergeSimilar collapses near-duplicate entries in symptoms, keeping the
// first occurrence of each complaint and preserving order.
func MergeSimilar(symptoms []string, threshold int) []string {
	merged := make([]string, 0, len(symptoms))
next:
	for _, s := range symptoms {
		s = normalizeSymptom(s)
		if s == "" {
			continue
		}
		for _, m := range merged {
			if nearDuplicate(m, s, threshold) {
				continue next
			}
		}
		merged = append(merged, s)
	}
	return merged
}
