package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"clip2txt/internal/app/export"
	"clip2txt/internal/app/repository/sqlite"
	"clip2txt/internal/config"
)

var outputFilePath string
var configPath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML settings file")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history to excel",
	Long: `Export the run history to excel

- Every recorded run with its clip range, status and transcript location`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load(configPath)
		if err != nil {
			log.Fatalln(err)
		}

		db, err := sqlite.NewSQLiteDB(settings.DatabasePath)
		if err != nil {
			log.Fatalln(err)
		}
		defer db.Close()

		runs, err := db.GetAll()
		if err != nil {
			log.Fatalln(err)
		}

		if err := export.ToExcel(runs, outputFilePath); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
