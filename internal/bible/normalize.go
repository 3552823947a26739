package bible

import (
	"strings"
	"unicode"
)

// Invisible formatting characters that show up in references pasted from
// mobile apps: zero-width space, zero-width no-break space (BOM), and the
// bidirectional embedding/override marks U+202A through U+202E.
const formattingRunes = "\u200B\uFEFF\u202A\u202B\u202C\u202D\u202E"

// stripFormatting removes Unicode control characters and the formatting
// characters above. Everything else is preserved in order.
func stripFormatting(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(formattingRunes, r) {
			return -1
		}
		return r
	}, s)
}
