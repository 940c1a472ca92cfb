package model

// Segment is one timed unit of recognized text, offsets in seconds from the
// start of the audio artifact.
type Segment struct {
	Start float64
	End   float64
	Text  string
}
