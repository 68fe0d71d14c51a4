package history

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clip-whisper/internal/app"
	"clip-whisper/internal/app/repository"
	"clip-whisper/internal/app/util/files"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", repository.DefaultRecentLimit,
		"number of records to show")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transcription runs",
	Long: `List recent transcription runs, newest first.

Every run is recorded, including failed ones; failures show the error
instead of an output file.`,
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

		if len(rows) == 0 {
			fmt.Println("No transcriptions recorded yet.")
			return nil
		}

		for _, t := range rows {
			status := "ok"
			if t.ErrorMessage != "" {
				status = "failed: " + t.ErrorMessage
			} else if t.OutputPath != "" {
				status = t.OutputPath
			}
			fmt.Printf("#%-4d %s  %-30s %s/%s  %s  %s\n",
				t.ID,
				t.CreatedAt.Format("2006-01-02 15:04"),
				t.FileName,
				t.Provider,
				t.Model,
				files.FormatMiB(t.FileSizeBytes),
				status,
			)
		}
		return nil
	},
}
