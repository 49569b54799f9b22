package audio

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// question prefix length used for slugs in compilation filenames
const slugRunes = 50

// Filename derives the audio filename for a card in a compilation:
// <prefix>_<index zero-padded to 3 digits>_<slug>.mp3.
func Filename(prefix string, index int, question string) string {
	return fmt.Sprintf("%s_%03d_%s.mp3", prefix, index, Slug(question, slugRunes))
}

// Slug reduces the beginning of a question to a filename-safe identifier:
// lowercased with non-word runes dropped and runs of whitespace and hyphens
// collapsed to single underscores. The text is NFC-normalized first so that
// composed and decomposed umlauts yield the same filename and the cache
// lookup in the audio dir stays stable.
func Slug(text string, maxRunes int) string {
	r := []rune(norm.NFC.String(text))
	if len(r) > maxRunes {
		r = r[:maxRunes]
	}
	var b strings.Builder
	sep := false
	for _, c := range r {
		switch {
		case unicode.IsSpace(c) || c == '-':
			sep = true
		case unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_':
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(unicode.ToLower(c))
		}
	}
	return strings.Trim(b.String(), "_")
}
