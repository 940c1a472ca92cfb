// Package whisper_cli drives a local OpenAI Whisper command-line binary.
package whisper_cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"clip2txt/internal/app/api"
	"clip2txt/internal/app/model"
)

// LocalTranscriber implements local transcription using the whisper CLI.
type LocalTranscriber struct {
	binaryPath string
	model      string
	language   string
	logger     *zap.SugaredLogger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, model, language string, logger *zap.SugaredLogger) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		model:      model,
		language:   language,
		logger:     logger,
	}
}

// DetectDevice reports "cuda" when a functional NVIDIA runtime is present and
// "cpu" otherwise. A missing accelerator degrades performance only.
func DetectDevice() string {
	if err := exec.Command("nvidia-smi", "-L").Run(); err == nil {
		return "cuda"
	}
	return "cpu"
}

// Transcript runs the whisper binary against audioPath in verbose mode,
// streaming all output to progress, and parses the timed lines it printed
// into ordered segments.
//
// On context cancellation the subprocess is killed and ctx.Err() is returned;
// everything written to progress up to that point has already been delivered.
func (lt *LocalTranscriber) Transcript(ctx context.Context, audioPath string, progress io.Writer) ([]model.Segment, error) {
	device := DetectDevice()
	if device == "cpu" {
		lt.logger.Infow("no functional CUDA device, falling back to CPU")
	}
	fmt.Fprintf(progress, "▶ Loading Whisper %q on %s …\n", lt.model, device)

	args := []string{
		audioPath,
		"--model", lt.model,
		"--device", device,
		"--verbose", "True",
	}
	if device == "cpu" {
		args = append(args, "--fp16", "False")
	}
	if lt.language != "" {
		args = append(args, "--language", lt.language)
	}

	var captured bytes.Buffer
	cmd := exec.Command(lt.binaryPath, args...)
	cmd.Stdout = io.MultiWriter(progress, &captured)
	cmd.Stderr = progress
	// bound the pipe drain after a kill so orphaned children cannot stall Wait
	cmd.WaitDelay = 3 * time.Second

	lt.logger.Debugw("running transcription command", "binary", lt.binaryPath, "args", args)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", lt.binaryPath, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("whisper command failed: %w", err)
		}
	}

	return api.ParseTimedLines(captured.String()), nil
}
