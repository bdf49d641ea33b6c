package match

import "strings"

// LevenshteinDistance computes the edit distance between two strings with
// unit costs for insertion, deletion and substitution.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for j := range previous {
		previous[j] = j
	}

	for i, ca := range ra {
		current[0] = i + 1
		for j, cb := range rb {
			insertion := previous[j+1] + 1
			deletion := current[j] + 1
			substitution := previous[j]
			if ca != cb {
				substitution++
			}
			current[j+1] = min(insertion, deletion, substitution)
		}
		previous, current = current, previous
	}

	return previous[len(rb)]
}

// FuzzyScore converts the edit distance between the normalized forms of two
// terms into a similarity score in [0,1]. Empty normalized input scores 0 so
// an empty term can never match everything, equal strings short-circuit to 1
// without running the distance table.
func FuzzyScore(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0.0
	}
	if na == nb {
		return 1.0
	}

	distance := LevenshteinDistance(na, nb)
	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// PartialScore scores containment of one normalized term in the other as the
// ratio of the shorter length to the longer. Identical strings score 1,
// non-containment scores 0.
func PartialScore(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0.0
	}
	if na == nb {
		return 1.0
	}
	if strings.Contains(nb, na) {
		return float64(len([]rune(na))) / float64(len([]rune(nb)))
	}
	if strings.Contains(na, nb) {
		return float64(len([]rune(nb))) / float64(len([]rune(na)))
	}
	return 0.0
}
