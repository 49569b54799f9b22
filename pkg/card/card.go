package card

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"
)

// Card is a single flashcard row from a TSV export. Index is the 1-based
// position of the row in the source file. It is kept even when surrounding
// rows are dropped so that derived audio filenames and compilation ids stay
// stable across edits of the deck.
type Card struct {
	Index    int
	Question string
	Answer   string
}

// Load reads flashcards from a tab-separated file, one card per line, the
// question in the first field and the answer in the second. Rows with fewer
// than two fields keep their position in the numbering but are dropped.
func Load(path string) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open card file: %w", err)
	}
	defer f.Close()

	var cards []Card
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	var index int
	for scanner.Scan() {
		index++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			slog.Debug("skip malformed card row", "row", index)
			continue
		}
		cards = append(cards, Card{
			Index:    index,
			Question: fields[0],
			Answer:   fields[1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read card file: %w", err)
	}
	return cards, nil
}
