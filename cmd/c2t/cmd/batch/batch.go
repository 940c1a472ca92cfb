package batch

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clip2txt/internal/app"
	"clip2txt/internal/config"
)

var inputDir string
var limit int
var configPath string

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "",
		"Directory holding the media files to transcribe")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 500,
		"Maximum number of files to process in one invocation")
	Cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to a YAML settings file")

	Cmd.MarkFlagRequired("inputDir")
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Transcribe every media file in a directory, full range",
	Long: `Transcribe every media file in a directory, full range

- Iterate the media files in the directory, oldest first
- Files with a completed run on record are skipped
- Each file gets its own run directory under the output root`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load(configPath)
		if err != nil {
			log.Fatalln(err)
		}

		runner := app.InitializeRunner(settings)
		defer runner.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runner.Batch(ctx, inputDir, limit); err != nil && ctx.Err() == nil {
			log.Fatalln(err)
		}
	},
}
