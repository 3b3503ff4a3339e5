package gen

import "strings"

// WrapCode inserts a newline after every width characters of code,
// purely for human readability of emitted output; width has no effect
// on execution. A non-positive width disables wrapping and returns code
// unchanged.
func WrapCode(code string, width int) string {
	if width <= 0 || len(code) <= width {
		return code
	}

	var b strings.Builder
	for i, r := range code {
		b.WriteRune(r)
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
