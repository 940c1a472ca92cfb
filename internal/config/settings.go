package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EngineWhisper runs a local whisper CLI binary; EngineOpenAI calls the
// hosted transcription API.
const (
	EngineWhisper = "whisper"
	EngineOpenAI  = "openai"
)

// Settings is the explicit per-process configuration handed to the run
// orchestrator at construction. Nothing here is mutated after Load.
type Settings struct {
	OutputRoot    string `yaml:"output_root" validate:"required"`
	Engine        string `yaml:"engine" validate:"required,oneof=whisper openai"`
	WhisperBinary string `yaml:"whisper_binary" validate:"required_if=Engine whisper"`
	Model         string `yaml:"model" validate:"required_if=Engine whisper"`
	Language      string `yaml:"language,omitempty"`
	DatabasePath  string `yaml:"database_path" validate:"required"`
	Verbose       bool   `yaml:"verbose,omitempty"`
}

// Default returns the built-in settings, matching a stock openai-whisper
// install on PATH.
func Default() *Settings {
	return &Settings{
		OutputRoot:    "output",
		Engine:        EngineWhisper,
		WhisperBinary: "whisper",
		Model:         "small",
		DatabasePath:  "data/runs.db",
	}
}

// Load builds Settings from defaults, overlaid with an optional YAML file and
// environment variable overrides, then validates the result.
func Load(configPath string) (*Settings, error) {
	settings := Default()

	if configPath != "" {
		data, err := os.ReadFile(os.ExpandEnv(configPath))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(settings)

	if err := validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("C2T_OUTPUT_ROOT"); v != "" {
		s.OutputRoot = v
	}
	if v := os.Getenv("C2T_ENGINE"); v != "" {
		s.Engine = v
	}
	if v := os.Getenv("WHISPER_BINARY"); v != "" {
		s.WhisperBinary = v
	}
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		s.Model = v
	}
	if v := os.Getenv("C2T_DATABASE_PATH"); v != "" {
		s.DatabasePath = v
	}
}
