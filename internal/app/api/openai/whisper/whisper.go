package whisper

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"clip2txt/internal/app/model"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
//
// The API returns the full segment list in one response, so cancellation
// cannot recover mid-run progress the way the local engine can; the verbose
// lines are replayed to the progress sink only after the call returns.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcript uses the OpenAI API for remote transcription.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, audioPath string, progress io.Writer) ([]model.Segment, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	segments := make([]model.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		fmt.Fprintf(progress, "[%s --> %s] %s\n", clock(s.Start), clock(s.End), s.Text)
		segments = append(segments, model.Segment{Start: s.Start, End: s.End, Text: s.Text})
	}
	return segments, nil
}

// clock renders seconds as mm:ss.mmm, the same shape the local engine prints.
func clock(sec float64) string {
	m := int(sec) / 60
	return fmt.Sprintf("%02d:%06.3f", m, sec-float64(m*60))
}
