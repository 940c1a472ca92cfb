// Package transcribe owns the lifecycle of a single transcription run and
// guarantees a transcript artifact is persisted before any outcome, including
// cancellation, propagates to the caller.
package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"clip2txt/internal/app/api"
	apperrors "clip2txt/internal/app/errors"
	"clip2txt/internal/app/model"
)

// Outcome is the terminal state of one transcription attempt.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeInterrupted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "Completed"
	case OutcomeInterrupted:
		return "Interrupted (Partial)"
	default:
		return "Failed"
	}
}

// Supervisor drives the recognition engine and captures its progress stream
// through a duplicating sink: everything the engine prints reaches the
// operator live and is simultaneously buffered for partial recovery.
type Supervisor struct {
	transcriber api.Transcriber
	logger      *zap.SugaredLogger
	out         io.Writer
}

func NewSupervisor(transcriber api.Transcriber, logger *zap.SugaredLogger, out io.Writer) *Supervisor {
	return &Supervisor{
		transcriber: transcriber,
		logger:      logger,
		out:         out,
	}
}

// Run transcribes audioPath and writes the transcript to txtPath.
//
// On normal completion the transcript is the trimmed segment texts joined
// with newlines. On cancellation whatever progress the captured stream holds
// is recovered and persisted before the cancellation error is returned. Any
// other engine failure is terminal with no partial artifact guaranteed.
func (s *Supervisor) Run(ctx context.Context, audioPath, txtPath string) (Outcome, error) {
	fmt.Fprintln(s.out, "\n[2/2] Transcribing audio …")
	start := time.Now()

	outcome := OutcomeFailed
	defer func() {
		dt := time.Since(start)
		fmt.Fprintf(s.out, "\n✔ Transcript (%s) saved to: %s\n", outcome, txtPath)
		fmt.Fprintf(s.out, "  Took %.1f min (%.0f s).\n", dt.Minutes(), dt.Seconds())
	}()

	var captured bytes.Buffer
	sink := io.MultiWriter(s.out, &captured)

	segments, err := s.transcriber.Transcript(ctx, audioPath, sink)
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "\n▶ Transcription complete – writing file…")
		if werr := os.WriteFile(txtPath, []byte(JoinSegments(segments)), 0o644); werr != nil {
			return OutcomeFailed, apperrors.Wrapf(apperrors.ErrTranscriptionFailed,
				"writing transcript: %v", werr)
		}
		outcome = OutcomeCompleted
		return outcome, nil

	case errors.Is(err, context.Canceled):
		fmt.Fprintln(s.out, "\n▶ Interrupted – saving partial transcript…")
		partial := RecoverPartial(captured.String())
		if werr := os.WriteFile(txtPath, []byte(partial), 0o644); werr != nil {
			s.logger.Errorw("failed to persist partial transcript", "path", txtPath, "error", werr)
		}
		outcome = OutcomeInterrupted
		// the cancellation propagates only after the partial artifact is written
		return outcome, err

	default:
		return OutcomeFailed, apperrors.Wrapf(apperrors.ErrTranscriptionFailed, "%v", err)
	}
}

// JoinSegments renders the final transcript text: each segment trimmed of
// surrounding whitespace, newline-joined, in chronological order. Zero
// segments yield an empty transcript, which is valid.
func JoinSegments(segments []model.Segment) string {
	texts := lo.Map(segments, func(seg model.Segment, _ int) string {
		return strings.TrimSpace(seg.Text)
	})
	return strings.Join(texts, "\n")
}

// RecoverPartial extracts the text of every timed line in the captured
// stream. When recognition had not yet produced any timed output the raw
// buffer is returned verbatim so nothing is silently discarded.
func RecoverPartial(captured string) string {
	segments := api.ParseTimedLines(captured)
	if len(segments) == 0 {
		return captured
	}
	lines := lo.Map(segments, func(seg model.Segment, _ int) string {
		return seg.Text
	})
	return strings.Join(lines, "\n")
}
