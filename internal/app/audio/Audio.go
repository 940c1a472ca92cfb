package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ProbeDuration queries ffprobe for the container duration of a local file and
// returns it truncated to whole seconds.
func ProbeDuration(ctx context.Context, filePath string) (int, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
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

// ExtractClip trims a local media file to an audio-only MP3 clip. The end
// marker may be empty, in which case the clip runs to the end of the source.
func ExtractClip(ctx context.Context, src, start, end, destMp3 string) error {
	args := []string{"-v", "error", "-ss", start}
	if end != "" {
		args = append(args, "-to", end)
	}
	args = append(args, "-i", src, "-vn", "-acodec", "libmp3lame", destMp3)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return nil
}
