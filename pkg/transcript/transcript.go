package transcript

// Word is a single recognized word of the narration with its absolute
// position in seconds. Words are ordered by non-decreasing start time.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
