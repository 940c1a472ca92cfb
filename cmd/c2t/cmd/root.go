package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"clip2txt/cmd/c2t/cmd/batch"
	"clip2txt/cmd/c2t/cmd/export"
	"clip2txt/cmd/c2t/cmd/run"
	"clip2txt/cmd/c2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "c2t",
	Short: "Convert a clip of a remote or local media source to a text transcript",
	Long: `Convert a bounded time range of a remote URL or local media file to text.
- The clip is fetched with yt-dlp or trimmed with ffmpeg
- Whisper transcribes the audio, live progress included
- Interrupting a run still saves the partial transcript`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
