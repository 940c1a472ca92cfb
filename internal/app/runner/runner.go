// Package runner sequences one source-to-transcript run: output location,
// duration probe, window resolution, acquisition, transcription, and run
// bookkeeping.
package runner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clip2txt/internal/app/api"
	"clip2txt/internal/app/model"
	"clip2txt/internal/app/repository"
	"clip2txt/internal/app/timewindow"
	"clip2txt/internal/app/transcribe"
	"clip2txt/internal/app/util/files"
	"clip2txt/internal/config"
)

const transcriptBasename = "transcript.txt"

type Runner struct {
	settings   *config.Settings
	acquirer   api.Acquirer
	supervisor *transcribe.Supervisor
	db         repository.RunDAO
	logger     *zap.SugaredLogger
	out        io.Writer

	// overridable for tests; names the fresh per-run subdirectory
	runDirName func() string
}

func NewRunner(settings *config.Settings, acquirer api.Acquirer, supervisor *transcribe.Supervisor,
	runDAO repository.RunDAO, logger *zap.SugaredLogger) *Runner {
	return &Runner{
		settings:   settings,
		acquirer:   acquirer,
		supervisor: supervisor,
		db:         runDAO,
		logger:     logger,
		out:        os.Stdout,
		runDirName: func() string { return time.Now().Format("run_20060102_150405") },
	}
}

func (r *Runner) Close() error {
	return r.db.Close()
}

// Run converts one source into a transcript. startTS and endTS are optional
// HH:MM:SS markers; empty means absent. The returned status is the run's
// terminal state, and err carries the failure reason when it is RunFailed, or
// the cancellation when it is RunInterrupted.
func (r *Runner) Run(ctx context.Context, source, startTS, endTS string) (model.RunStatus, error) {
	if err := files.EnsureDir(r.settings.OutputRoot); err != nil {
		return model.RunFailed, err
	}

	// a collision with an existing run directory is a failure, not a rename
	runDir := filepath.Join(r.settings.OutputRoot, r.runDirName())
	if err := os.Mkdir(runDir, os.ModePerm); err != nil {
		return model.RunFailed, fmt.Errorf("failed to create run directory %s: %w", runDir, err)
	}
	fmt.Fprintf(r.out, "▶ Output → %s\n", runDir)

	hint := r.acquirer.ProbeDuration(ctx, source)

	win, err := timewindow.Resolve(startTS, endTS, hint)
	if err != nil {
		r.record(source, timewindow.Window{}, 0, model.RunFailed, "", err)
		return model.RunFailed, err
	}
	fmt.Fprintf(r.out, "▶ Clip range: %s → %s\n", win.StartTimestamp(), win.EndTimestamp())

	audioPath, err := r.acquirer.Acquire(ctx, source, win, runDir)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			r.record(source, win, 0, model.RunInterrupted, "", err)
			return model.RunInterrupted, err
		}
		r.record(source, win, 0, model.RunFailed, "", err)
		return model.RunFailed, err
	}

	txtPath := filepath.Join(runDir, transcriptBasename)
	outcome, err := r.supervisor.Run(ctx, audioPath, txtPath)

	status := model.RunCompleted
	switch outcome {
	case transcribe.OutcomeInterrupted:
		status = model.RunInterrupted
	case transcribe.OutcomeFailed:
		status = model.RunFailed
	}
	r.record(source, win, win.End-win.Start, status, txtPath, err)
	return status, err
}

// Batch transcribes every not-yet-processed media file found in inputDir,
// full range, up to limit files.
func (r *Runner) Batch(ctx context.Context, inputDir string, limit int) error {
	fileInfos, err := files.GetAllMediaFiles(inputDir)
	if err != nil {
		return err
	}

	toProcess := r.filterUnprocessed(fileInfos, limit)
	if len(toProcess) == 0 {
		fmt.Fprintln(r.out, "nothing to do, all files already processed")
		return nil
	}

	progress := NewProgressManager(ProgressConfig{Enabled: true})
	bar := progress.CreateBar(len(toProcess), "transcribing")

	for _, file := range toProcess {
		status, err := r.Run(ctx, file.FullPath, "", "")
		if status == model.RunInterrupted {
			bar.Complete()
			progress.Wait()
			return err
		}
		if err != nil {
			r.logger.Errorw("batch run failed", "file", file.Name, "error", err)
		}
		bar.Increment()
	}
	progress.Wait()
	return nil
}

func (r *Runner) filterUnprocessed(fileInfos []model.FileInfo, limit int) []model.FileInfo {
	toProcess := make([]model.FileInfo, 0, limit)
	for _, fileInfo := range fileInfos {
		if id, err := r.db.CheckIfSourceProcessed(fileInfo.FullPath); err == nil {
			fmt.Fprintf(r.out, "File '%s' already processed as run '%s', skipping...\n", fileInfo.Name, id)
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Warnw("processed-file lookup failed", "file", fileInfo.Name, "error", err)
		}

		toProcess = append(toProcess, fileInfo)
		if len(toProcess) >= limit {
			break
		}
	}
	return toProcess
}

// record persists run bookkeeping; failures here are logged, never fatal to
// an already-produced artifact.
func (r *Runner) record(source string, win timewindow.Window, audioDuration int,
	status model.RunStatus, txtPath string, runErr error) {
	errMsg := ""
	if runErr != nil && status == model.RunFailed {
		errMsg = runErr.Error()
	}
	err := r.db.Record(model.Run{
		ID:             uuid.NewString(),
		Source:         source,
		StartSec:       win.Start,
		EndSec:         win.End,
		AudioDuration:  audioDuration,
		Status:         status,
		TranscriptPath: txtPath,
		ErrorMessage:   errMsg,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		r.logger.Errorw("failed to record run", "source", source, "error", err)
	}
}

// RunHistory exposes the recorded runs for export.
func (r *Runner) RunHistory() ([]model.Run, error) {
	return r.db.GetAll()
}

