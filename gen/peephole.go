package gen

import "strings"

// badPatterns are the adjacent instruction pairs and the empty loop that
// the optimizer removes: each pair cancels its own effect, and an empty
// loop reached on a zero cell is skipped without effect (reached on a
// non-zero cell it never terminates, and removing it changes that).
var badPatterns = []string{"+-", "-+", "<>", "><", "[]"}

// containsBadCode reports whether code still contains any pattern from
// badPatterns.
func containsBadCode(code string) bool {
	for _, p := range badPatterns {
		if strings.Contains(code, p) {
			return true
		}
	}
	return false
}

// Optimize repeatedly strips every occurrence of every bad pattern from
// code until a pass removes nothing. Repetition matters: removing one
// pair can expose a new one at the seam it leaves behind, e.g. "+[]-"
// only cancels fully once the "[]" in the middle is gone.
func Optimize(code string) string {
	for containsBadCode(code) {
		for _, p := range badPatterns {
			code = strings.ReplaceAll(code, p, "")
		}
	}
	return code
}
