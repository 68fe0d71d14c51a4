package export

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"clip-whisper/internal/app/model"
	"clip-whisper/internal/app/util/files"
)

// ToExcel writes the run history to an xlsx workbook at outputFilePath.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %v", err)
	}

	header := []string{"ID", "Created At", "File Name", "Provider", "Model",
		"Size (MB)", "Duration (s)", "Transcription", "Output File", "Error Message"}
	headerRow := sheet.AddRow()
	for _, column := range header {
		headerRow.AddCell().Value = column
	}

	rows := lo.Map(transcriptions, func(t model.Transcription, _ int) []string {
		return []string{
			fmt.Sprint(t.ID),
			t.CreatedAt.Format(time.RFC3339),
			t.FileName,
			t.Provider,
			t.Model,
			fmt.Sprintf("%.1f", files.SizeInMiB(t.FileSizeBytes)),
			fmt.Sprintf("%.2f", t.AudioDuration),
			t.Transcription,
			t.OutputPath,
			t.ErrorMessage,
		}
	})

	for _, cells := range rows {
		row := sheet.AddRow()
		for _, value := range cells {
			row.AddCell().Value = value
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save excel file: %v", err)
	}
	return nil
}
