package align

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fbngrm/anki-video/pkg/transcript"
	"golang.org/x/exp/slog"
)

// spacing in seconds between consecutive items whose keyword was not found
// in the transcript
const fallbackSpacing = 2.0

// Item is one visual list entry with the video frame at which it appears.
// Found distinguishes a placement confirmed by the transcript from an
// interpolated one.
type Item struct {
	Text       string `json:"text"`
	StartFrame int    `json:"startFrame"`
	Found      bool   `json:"found"`
}

// Align assigns each item the frame at which its keyword is spoken in the
// narration. The search over the transcript only moves forward; a word
// matched for one item is never considered again for a later one, which
// keeps the resulting frames non-decreasing. An item whose keyword does not
// occur in the remaining transcript is placed two seconds after the last
// confirmed placement; the cursor stays where it is since nothing was
// consumed.
func Align(items []string, words []transcript.Word, framesPerSecond int) []Item {
	aligned := make([]Item, 0, len(items))
	cursor := 0
	lastTime := 0.0
	for _, item := range items {
		kw := keyword(item)
		found := -1
		for i := cursor; i < len(words); i++ {
			w := normalize(words[i].Word)
			if strings.Contains(w, kw) || strings.Contains(kw, w) {
				found = i
				break
			}
		}
		if found >= 0 {
			t := words[found].Start
			slog.Debug("found keyword", "keyword", kw, "word", words[found].Word, "start", t)
			aligned = append(aligned, Item{
				Text:       item,
				StartFrame: int(t * float64(framesPerSecond)),
				Found:      true,
			})
			lastTime = t
			cursor = found + 1
		} else {
			slog.Debug("keyword not found, interpolating", "keyword", kw)
			aligned = append(aligned, Item{
				Text:       item,
				StartFrame: int((lastTime + fallbackSpacing) * float64(framesPerSecond)),
				Found:      false,
			})
			lastTime += fallbackSpacing
		}
	}
	return aligned
}

// keyword picks the search term for an item: a leading list marker is
// dropped, the first token longer than three runes wins, the first token is
// the fallback. The result is reduced to lowercase alphanumeric runes so it
// can be compared against transcript words regardless of punctuation.
func keyword(item string) string {
	if r, _ := utf8.DecodeRuneInString(item); unicode.IsDigit(r) {
		if _, rest, ok := strings.Cut(item, " "); ok {
			item = rest
		}
	}
	tokens := strings.Fields(item)
	if len(tokens) == 0 {
		return ""
	}
	kw := tokens[0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > 3 {
			kw = tok
			break
		}
	}
	return normalize(kw)
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
