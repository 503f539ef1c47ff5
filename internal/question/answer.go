package question

// SameSet reports whether two letter lists hold the same members, ignoring
// order and repetition.
func SameSet(a, b []string) bool {
	left := letterSet(a)
	right := letterSet(b)
	if len(left) != len(right) {
		return false
	}
	for letter := range left {
		if _, ok := right[letter]; !ok {
			return false
		}
	}
	return true
}

func letterSet(letters []string) map[string]struct{} {
	set := make(map[string]struct{}, len(letters))
	for _, letter := range letters {
		set[letter] = struct{}{}
	}
	return set
}
