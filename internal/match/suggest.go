package match

import "strings"

// closeEnough is the minimum normalized similarity for a suggestion.
// Below it, suggesting a name adds noise instead of help.
const closeEnough = 0.5

// NormalizeTypeName prepares a type name for fuzzy comparison: the package
// qualifier, pointer and bracket decorations are stripped and the rest is
// case-folded. "*big.Int" and "nullable.Nullable[int32]" become "int" and
// "nullableint32".
func NormalizeTypeName(name string) string {
	name = strings.TrimLeft(name, "*[]")

	if i := strings.LastIndex(name, "."); i >= 0 && !strings.Contains(name[:i], "[") {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '.', '*', '/':
			return -1
		}
		return r
	}, name)

	return strings.ToLower(name)
}

// Closest returns the candidate most similar to target, if any candidate
// scores at least closeEnough.
func Closest(target string, candidates []string) (string, bool) {
	normTarget := NormalizeTypeName(target)

	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := LevenshteinNormalized(normTarget, NormalizeTypeName(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < closeEnough {
		return "", false
	}

	return best, true
}
