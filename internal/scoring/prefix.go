package scoring

import "strings"

// UniquePrefixes returns the shortest case-insensitively unique prefix of
// each name, in input order. A name with no unique prefix (it equals another
// name ignoring case) is returned whole; such duplicates stay ambiguous.
func UniquePrefixes(names []string) []string {
	folded := make([][]rune, len(names))
	for i, name := range names {
		folded[i] = []rune(strings.ToLower(name))
	}

	prefixes := make([]string, len(names))
	for i, name := range names {
		prefixes[i] = shortestUniquePrefix(i, []rune(name), folded)
	}

	return prefixes
}

func shortestUniquePrefix(index int, name []rune, folded [][]rune) string {
	for length := 1; length <= len(name); length++ {
		unique := true
		for other := range folded {
			if other == index {
				continue
			}
			if equalRunes(prefixOf(folded[index], length), prefixOf(folded[other], length)) {
				unique = false
				break
			}
		}
		if unique {
			return string(name[:length])
		}
	}

	return string(name)
}

// prefixOf behaves like a substring call: a name shorter than length is its own prefix.
func prefixOf(runes []rune, length int) []rune {
	if length > len(runes) {
		return runes
	}
	return runes[:length]
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
