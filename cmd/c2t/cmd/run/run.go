package run

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clip2txt/internal/app"
	"clip2txt/internal/app/model"
	"clip2txt/internal/config"
)

var startTS string
var endTS string
var outputRoot string
var configPath string

func init() {
	Cmd.Flags().StringVarP(&startTS, "from", "f", "",
		"Clip start as HH:MM:SS, empty means the start of the source")
	Cmd.Flags().StringVarP(&endTS, "to", "t", "",
		"Clip end as HH:MM:SS, empty means the end of the source")
	Cmd.Flags().StringVarP(&outputRoot, "output", "o", "",
		"Output root directory, each run gets its own timestamped subdirectory")
	Cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to a YAML settings file")
}

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run <source>",
	Short: "Transcribe a clip of a single URL or local media file",
	Long: `Transcribe a clip of a single URL or local media file

- Resolve the requested time range against the source duration
- Fetch or trim the clip to an MP3 audio artifact
- Transcribe it; Ctrl-C saves whatever was recognized so far`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load(configPath)
		if err != nil {
			log.Fatalln(err)
		}
		if outputRoot != "" {
			settings.OutputRoot = outputRoot
		}

		runner := app.InitializeRunner(settings)
		defer runner.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println("--- RUN START ---")
		status, err := runner.Run(ctx, args[0], startTS, endTS)
		switch status {
		case model.RunCompleted:
			fmt.Println("\n--- RUN FINISHED SUCCESSFULLY ---")
		case model.RunInterrupted:
			// cancellation is not an error
			fmt.Println("\n--- RUN END (INTERRUPTED BY USER) ---")
		default:
			fmt.Println("\n--- RUN FAILED ---")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}
