package content

import (
	"strings"
	"unicode"
)

// Content is the visual structure of a flashcard answer: an optional intro
// paragraph followed by the itemized points shown one by one in the video.
type Content struct {
	Question string
	Intro    string
	Items    []string
}

// two-state parser mode, the transition intro -> list is one-way
type mode int

const (
	modeIntro mode = iota
	modeList
)

// Parse splits a flashcard answer into an intro and a list of visual items.
// HTML line breaks from the TSV export are normalized to newlines first.
// A line starting with a digit followed by "." or ")", or with "-" or "•",
// flips the parser into list mode. Once in list mode every further line
// becomes an item of its own, so wrapped continuation lines after the first
// marker are not merged back into the previous item.
func Parse(question, answer string) Content {
	normalized := strings.ReplaceAll(answer, "<br>", "\n")
	normalized = strings.ReplaceAll(normalized, "<br/>", "\n")

	var intro strings.Builder
	var items []string
	m := modeIntro
	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m == modeIntro && isListMarker(line) {
			m = modeList
		}
		switch m {
		case modeIntro:
			intro.WriteString(line)
			intro.WriteString("\n")
		case modeList:
			items = append(items, line)
		}
	}
	return Content{
		Question: question,
		Intro:    intro.String(),
		Items:    items,
	}
}

func isListMarker(line string) bool {
	r := []rune(line)
	if len(r) == 0 {
		return false
	}
	if r[0] == '-' || r[0] == '•' {
		return true
	}
	return len(r) > 1 && unicode.IsDigit(r[0]) && (r[1] == '.' || r[1] == ')')
}
