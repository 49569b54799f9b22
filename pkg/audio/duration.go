package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tcolgate/mp3"
)

// Duration returns the playback length of an mp3 file in seconds by walking
// its frames.
func Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var seconds float64
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("could not decode %s: %w", path, err)
		}
		seconds += frame.Duration().Seconds()
	}
	return seconds, nil
}
