package recall

import "strings"

// Normalize prepares a string for answer comparison: whitespace runs
// collapse to single spaces, surrounding whitespace is dropped, and the
// result is lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Check reports whether the learner's input matches the node label.
// Both sides are normalized first, so casing and spacing never count
// against the learner.
func Check(input, label string) bool {
	return Normalize(input) == Normalize(label)
}
