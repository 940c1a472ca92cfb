// Package acquire turns a source locator plus a resolved window into the
// run's audio artifact, routing between a local ffmpeg trim and a remote
// yt-dlp fetch.
package acquire

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"clip2txt/internal/app/audio"
	"clip2txt/internal/app/downloader"
	apperrors "clip2txt/internal/app/errors"
	"clip2txt/internal/app/timewindow"
)

// AudioBasename is the fixed name of the audio artifact inside a run directory.
const AudioBasename = downloader.AudioBasename

type localTrimFunc func(ctx context.Context, src, start, end, destMp3 string) error
type remoteFetchFunc func(ctx context.Context, url, rangeExpr, destDir string, out io.Writer) error

// Dispatcher selects an acquisition strategy by checking whether the source
// locator names an existing local file. No URL-scheme parsing is done.
type Dispatcher struct {
	localTrim   localTrimFunc
	remoteFetch remoteFetchFunc
	out         io.Writer
	logger      *zap.SugaredLogger
}

func NewDispatcher(logger *zap.SugaredLogger, out io.Writer) *Dispatcher {
	return &Dispatcher{
		localTrim:   audio.ExtractClip,
		remoteFetch: downloader.FetchClip,
		out:         out,
		logger:      logger,
	}
}

// IsLocal reports whether the source locator resolves to an existing regular
// file on the local filesystem.
func (d *Dispatcher) IsLocal(source string) bool {
	info, err := os.Stat(source)
	return err == nil && info.Mode().IsRegular()
}

// ProbeDuration obtains a duration hint appropriate to the source kind. Probe
// failures are absorbed and logged; the hint is then simply unknown.
func (d *Dispatcher) ProbeDuration(ctx context.Context, source string) timewindow.DurationHint {
	var (
		seconds int
		err     error
	)
	if d.IsLocal(source) {
		seconds, err = audio.ProbeDuration(ctx, source)
	} else {
		seconds, err = downloader.ProbeDuration(ctx, source)
	}
	if err != nil {
		d.logger.Infow("duration probe failed, continuing without a hint",
			"source", source, "error", err)
	}
	return timewindow.HintOf(seconds, err)
}

// Acquire produces the audio artifact for the window inside destDir and
// returns its path. A collaborator exiting zero without producing the expected
// file is a failure, never silently treated as success. No partial-file
// cleanup happens here; unusable output is rejected by the next stage.
func (d *Dispatcher) Acquire(ctx context.Context, source string, win timewindow.Window, destDir string) (string, error) {
	destMp3 := filepath.Join(destDir, AudioBasename)

	if d.IsLocal(source) {
		fmt.Fprintln(d.out, "[1/2] Extracting local clip…")
		if err := d.localTrim(ctx, source, win.StartTimestamp(), win.EndTimestamp(), destMp3); err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", apperrors.Wrapf(apperrors.ErrAcquisitionFailed, "local trim: %v", err)
		}
	} else {
		fmt.Fprintln(d.out, "[1/2] Downloading & extracting clip…")
		if err := d.remoteFetch(ctx, source, win.RangeExpr(), destDir, d.out); err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", apperrors.Wrapf(apperrors.ErrAcquisitionFailed, "remote fetch: %v", err)
		}
	}

	if _, err := os.Stat(destMp3); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrAcquisitionFailed,
			"collaborator finished but %s not found", destMp3)
	}

	fmt.Fprintf(d.out, "✔ Clip saved to %s\n", destMp3)
	return destMp3, nil
}
