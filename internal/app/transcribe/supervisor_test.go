package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "clip2txt/internal/app/errors"
	"clip2txt/internal/app/model"
)

// fakeEngine scripts one transcription attempt: it writes lines to the
// progress sink, then returns the configured segments or error.
type fakeEngine struct {
	progressLines []string
	segments      []model.Segment
	err           error
}

func (f *fakeEngine) Transcript(_ context.Context, _ string, progress io.Writer) ([]model.Segment, error) {
	for _, line := range f.progressLines {
		fmt.Fprintln(progress, line)
	}
	return f.segments, f.err
}

func txtPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "transcript.txt")
}

func TestRunCompletedJoinsTrimmedSegments(t *testing.T) {
	engine := &fakeEngine{
		segments: []model.Segment{
			{Start: 0, End: 1, Text: "  hi  "},
			{Start: 1, End: 2, Text: "there"},
			{Start: 2, End: 3, Text: " world"},
		},
	}
	s := NewSupervisor(engine, zap.NewNop().Sugar(), io.Discard)

	path := txtPath(t)
	outcome, err := s.Run(context.Background(), "audio.mp3", path)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\nthere\nworld", string(content))
}

func TestRunCompletedZeroSegments(t *testing.T) {
	s := NewSupervisor(&fakeEngine{}, zap.NewNop().Sugar(), io.Discard)

	path := txtPath(t)
	outcome, err := s.Run(context.Background(), "audio.mp3", path)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(content), "empty audio produces an empty file, not an error")
}

func TestRunInterruptedRecoversTimedLines(t *testing.T) {
	engine := &fakeEngine{
		progressLines: []string{
			"Detecting language using up to the first 30 seconds.",
			"[00:00.000 --> 00:02.000]  first line",
			"[00:02.000 --> 00:04.000]  second line",
		},
		err: context.Canceled,
	}
	s := NewSupervisor(engine, zap.NewNop().Sugar(), io.Discard)

	path := txtPath(t)
	outcome, err := s.Run(context.Background(), "audio.mp3", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, OutcomeInterrupted, outcome)

	// partial artifact was persisted before the cancellation propagated
	content, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "first line\nsecond line", string(content))
}

func TestRunInterruptedWithoutTimedLinesKeepsRawBuffer(t *testing.T) {
	engine := &fakeEngine{
		progressLines: []string{"Loading model small on CPU..."},
		err:           context.Canceled,
	}
	s := NewSupervisor(engine, zap.NewNop().Sugar(), io.Discard)

	path := txtPath(t)
	outcome, err := s.Run(context.Background(), "audio.mp3", path)
	require.Error(t, err)
	assert.Equal(t, OutcomeInterrupted, outcome)

	content, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "Loading model small on CPU...\n", string(content))
}

func TestRunFailedEngineError(t *testing.T) {
	engine := &fakeEngine{err: errors.New("unreadable audio")}
	s := NewSupervisor(engine, zap.NewNop().Sugar(), io.Discard)

	outcome, err := s.Run(context.Background(), "audio.mp3", txtPath(t))
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.True(t, errors.Is(err, apperrors.ErrTranscriptionFailed))
}

func TestRunDuplicatesProgressToOperator(t *testing.T) {
	engine := &fakeEngine{
		progressLines: []string{"[00:00.000 --> 00:02.000]  live line"},
		segments:      []model.Segment{{Text: "live line"}},
	}

	var operator bytes.Buffer
	s := NewSupervisor(engine, zap.NewNop().Sugar(), &operator)

	_, err := s.Run(context.Background(), "audio.mp3", txtPath(t))
	require.NoError(t, err)
	assert.Contains(t, operator.String(), "[00:00.000 --> 00:02.000]  live line")
	assert.Contains(t, operator.String(), "Took")
}

func TestRecoverPartial(t *testing.T) {
	tests := []struct {
		name     string
		captured string
		expected string
	}{
		{
			name: "timed lines extracted in order, stray lines dropped",
			captured: "[00:00.000 --> 00:02.000]  one\n" +
				"some informational line\n" +
				"[00:02.000 --> 00:04.000]  two\n",
			expected: "one\ntwo",
		},
		{
			name:     "no timed lines falls back to raw buffer",
			captured: "engine starting\nno output yet\n",
			expected: "engine starting\nno output yet\n",
		},
		{
			name:     "empty buffer stays empty",
			captured: "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecoverPartial(tt.captured))
		})
	}
}

func TestJoinSegments(t *testing.T) {
	assert.Equal(t, "", JoinSegments(nil))
	assert.Equal(t, "a\nb", JoinSegments([]model.Segment{{Text: " a "}, {Text: "b"}}))
}
