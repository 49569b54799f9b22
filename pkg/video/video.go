package video

import (
	"github.com/fbngrm/anki-video/pkg/align"
	"github.com/fbngrm/anki-video/pkg/transcript"
)

// FramesPerSecond is the frame rate the renderer runs at; all startFrame
// and durationInFrames values are relative to it.
const FramesPerSecond = 30

// trailing buffer added to the audio length, in frames
const (
	DefaultPaddingFrames     = 90
	CompilationPaddingFrames = 60
)

// Content is the visual content of a card, the items carrying the frame at
// which they appear.
type Content struct {
	Question string       `json:"question"`
	Intro    string       `json:"intro"`
	Items    []align.Item `json:"items"`
}

// Card is the render-ready record for one flashcard. ID is the 1-based
// position of the card in the source deck and is only set in compilations.
type Card struct {
	ID               int               `json:"id,omitempty"`
	AudioURL         string            `json:"audioUrl"`
	Subtitles        []transcript.Word `json:"subtitles"`
	Content          Content           `json:"content"`
	DurationInFrames int               `json:"durationInFrames"`
}

// Compilation aggregates the records of a whole deck for a single render
// job. Cards keep the order of the source deck; the ids of skipped cards
// are simply absent, never reused.
type Compilation struct {
	Type  string `json:"type"`
	Cards []Card `json:"cards"`
}
