package api

import (
	"context"
	"io"

	"clip2txt/internal/app/model"
	"clip2txt/internal/app/timewindow"
)

// Transcriber converts an audio file into an ordered sequence of transcript
// segments. Raw engine output is streamed to progress verbatim while the
// engine runs; on cancellation the returned error wraps ctx.Err().
type Transcriber interface {
	Transcript(ctx context.Context, audioPath string, progress io.Writer) ([]model.Segment, error)
}

// Acquirer produces the run's audio artifact for a source locator and probes
// its duration. The concrete engines behind it are swappable.
type Acquirer interface {
	ProbeDuration(ctx context.Context, source string) timewindow.DurationHint
	Acquire(ctx context.Context, source string, win timewindow.Window, destDir string) (string, error)
}
