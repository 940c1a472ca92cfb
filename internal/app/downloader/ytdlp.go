// Package downloader wraps yt-dlp for remote clip acquisition and metadata
// probes.
package downloader

import (
	"context"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// AudioBasename is the fixed output name yt-dlp is told to produce.
const AudioBasename = "audio.mp3"

// FetchClip downloads and extracts the windowed audio for url into destDir as
// AudioBasename. rangeExpr is a "*start-end" section expression. Stream
// selection prefers audio-bearing streams, then larger files.
func FetchClip(ctx context.Context, url, rangeExpr, destDir string, out io.Writer) error {
	args := []string{
		url,
		"-S", "hasaud,+filesize",
		"-x", "--audio-format", "mp3",
		"--download-sections", rangeExpr,
		"-o", "audio.%(ext)s",
		"-P", destDir,
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	sink := NewLogFilter(out)
	cmd.Stdout = sink
	cmd.Stderr = sink

	err := cmd.Run()
	sink.Flush()
	return err
}

// ProbeDuration asks yt-dlp for the media length in seconds without
// downloading anything. Network or auth failures surface as errors and are
// folded to "unknown" by the caller.
func ProbeDuration(ctx context.Context, url string) (int, error) {
	cmd := exec.CommandContext(ctx, "yt-dlp", "--no-download", "--print", "duration", url)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	return int(durationFloat), nil
}
