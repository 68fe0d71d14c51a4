package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clip-whisper/internal/app"
	"clip-whisper/internal/app/converter/export"
)

var (
	outputFilePath string
	limit          int
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "set the output .xlsx path")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 100, "maximum records to export")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export recent transcription runs to excel",
	Long: `Export recent transcription runs to an excel workbook, newest first.

Failed runs are included with their error message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.InitializeHistoryDAO()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		defer db.Close()

		rows, err := db.GetRecent(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		if err := export.ToExcel(rows, outputFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
