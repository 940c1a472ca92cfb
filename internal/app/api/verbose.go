package api

import (
	"regexp"
	"strconv"
	"strings"

	"clip2txt/internal/app/model"
)

// TimedLineRe matches one verbose recognition line of the shape
// "[mm:ss.mmm --> mm:ss.mmm] text" (hours optional). Informational lines
// interleaved in the stream do not match.
var TimedLineRe = regexp.MustCompile(
	`\[(\d{2}:\d{2}(?::\d{2})?\.\d{3})\s*-->\s*(\d{2}:\d{2}(?::\d{2})?\.\d{3})\]\s+(.*)`)

// ParseTimedLines extracts every timed line from a captured engine stream, in
// order of appearance.
func ParseTimedLines(captured string) []model.Segment {
	matches := TimedLineRe.FindAllStringSubmatch(captured, -1)
	segments := make([]model.Segment, 0, len(matches))
	for _, m := range matches {
		segments = append(segments, model.Segment{
			Start: parseClock(m[1]),
			End:   parseClock(m[2]),
			Text:  m[3],
		})
	}
	return segments
}

// parseClock converts "mm:ss.mmm" or "hh:mm:ss.mmm" to seconds. Inputs are
// pre-validated by TimedLineRe.
func parseClock(clock string) float64 {
	parts := strings.Split(clock, ":")
	var total float64
	for _, p := range parts {
		v, _ := strconv.ParseFloat(p, 64)
		total = total*60 + v
	}
	return total
}
