package recall

import "strings"

// HintText returns the portion of a label revealed after the given number
// of hints. Reveals grow monotonically: the first hint shows the opening
// letter, the second the initials of every word, and the third the full
// label. The state map only counts hints; this is the reveal policy.
func HintText(label string, hints int) string {
	words := strings.Fields(label)
	if hints <= 0 || len(words) == 0 {
		return ""
	}
	switch hints {
	case 1:
		r := []rune(words[0])
		return string(r[0]) + "…"
	case 2:
		initials := make([]string, len(words))
		for i, w := range words {
			r := []rune(w)
			initials[i] = string(r[0]) + "…"
		}
		return strings.Join(initials, " ")
	default:
		return label
	}
}
