//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"clip2txt/internal/app/runner"
	"clip2txt/internal/config"
)

func InitializeRunner(settings *config.Settings) *runner.Runner {
	wire.Build(
		runner.NewRunner,
		provideLogger,
		provideTranscriber,
		provideAcquirer,
		provideSupervisor,
		provideRunDAO,
	)
	return &runner.Runner{}
}
