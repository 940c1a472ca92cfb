package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"clip2txt/internal/app/model"
)

// ToExcel writes the run history to a spreadsheet for inspection.
func ToExcel(runs []model.Run, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Runs")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Source"
	headerRow.AddCell().Value = "Clip Start"
	headerRow.AddCell().Value = "Clip End"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Transcript Path"
	headerRow.AddCell().Value = "Error Message"
	headerRow.AddCell().Value = "Created At"

	for _, r := range runs {
		row := sheet.AddRow()
		row.AddCell().Value = r.ID
		row.AddCell().Value = r.Source
		row.AddCell().Value = fmt.Sprint(r.StartSec)
		row.AddCell().Value = fmt.Sprint(r.EndSec)
		row.AddCell().Value = fmt.Sprint(r.AudioDuration)
		row.AddCell().Value = string(r.Status)
		row.AddCell().Value = r.TranscriptPath
		row.AddCell().Value = r.ErrorMessage
		row.AddCell().Value = r.CreatedAt.Format(time.RFC3339)
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
