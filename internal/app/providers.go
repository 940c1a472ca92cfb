package app

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"clip2txt/internal/app/acquire"
	"clip2txt/internal/app/api"
	"clip2txt/internal/app/api/openai"
	"clip2txt/internal/app/api/openai/whisper"
	"clip2txt/internal/app/api/whisper_cli"
	applogger "clip2txt/internal/app/logger"
	"clip2txt/internal/app/repository"
	"clip2txt/internal/app/repository/sqlite"
	"clip2txt/internal/app/transcribe"
	"clip2txt/internal/app/util/files"
	"clip2txt/internal/config"
)

func provideLogger(settings *config.Settings) *zap.SugaredLogger {
	return applogger.MustNewLogger(settings.Verbose).Sugar()
}

// provideTranscriber selects the recognition engine named by the settings.
// The local whisper CLI is the default; the OpenAI engine requires
// OPENAI_API_KEY in the environment.
func provideTranscriber(settings *config.Settings, logger *zap.SugaredLogger) api.Transcriber {
	switch settings.Engine {
	case config.EngineOpenAI:
		return whisper.NewRemoteTranscriber(openai.GetClient())
	default:
		return whisper_cli.NewLocalTranscriber(settings.WhisperBinary, settings.Model, settings.Language, logger)
	}
}

func provideAcquirer(logger *zap.SugaredLogger) api.Acquirer {
	return acquire.NewDispatcher(logger, os.Stdout)
}

func provideSupervisor(transcriber api.Transcriber, logger *zap.SugaredLogger) *transcribe.Supervisor {
	return transcribe.NewSupervisor(transcriber, logger, os.Stdout)
}

func provideRunDAO(settings *config.Settings) repository.RunDAO {
	if err := files.EnsureDir(filepath.Dir(settings.DatabasePath)); err != nil {
		log.Fatalf("Failed to create database directory: %v\n", err)
	}
	db, err := sqlite.NewSQLiteDB(settings.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open run database: %v\n", err)
	}
	return db
}
