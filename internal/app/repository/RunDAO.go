package repository

import "clip2txt/internal/app/model"

// RunDAO persists run history. It is bookkeeping only; transcript artifacts
// live on the filesystem.
type RunDAO interface {
	Record(run model.Run) error
	CheckIfSourceProcessed(source string) (string, error)
	GetAll() ([]model.Run, error)
	Close() error
}
