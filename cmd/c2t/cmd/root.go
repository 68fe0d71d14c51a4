package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clip-whisper/cmd/c2t/cmd/export"
	"clip-whisper/cmd/c2t/cmd/history"
	"clip-whisper/cmd/c2t/cmd/serve"
	"clip-whisper/cmd/c2t/cmd/version"
	"clip-whisper/internal/app"
	"clip-whisper/internal/app/api/provider"
	"clip-whisper/internal/app/converter"
	"clip-whisper/internal/config"
	"clip-whisper/internal/logging"
)

var Verbose bool

var (
	providerName string
	modelName    string
	language     string
	prompt       string
)

// rootCmd transcribes a single media file; subcommands cover history, export
// and the HTTP server. All user-facing output of a run goes to stdout and the
// command prints its own failures, so cobra's reporting stays silent.
var rootCmd = &cobra.Command{
	Use:   "c2t <path_to_media_file>",
	Short: "Transcribe a single audio or video file to text",
	Long: `Transcribe a single local audio or video file by uploading it to a remote
speech-to-text provider. The transcript is echoed and saved next to the
input file as <name>_transcript.txt.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTranscription,
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
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")

	rootCmd.Flags().StringVarP(&providerName, "provider", "p", "",
		"transcription provider (defaults to providers.yaml default_provider, then openai)")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "", "model override for the provider")
	rootCmd.Flags().StringVarP(&language, "language", "l", "", "language hint, e.g. en")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "context prompt passed to the provider")
}

func runTranscription(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: c2t <path_to_media_file>")
		fmt.Println("Example: c2t video.mp4")
		return fmt.Errorf("expected exactly one media file argument")
	}

	logger := logging.NewCLILogger(Verbose)
	defer logger.Sync()

	providersCfg, err := config.LoadProvidersIfPresent(config.DefaultProvidersPath())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	name := providersCfg.Resolve(providerName)
	info, err := provider.InfoFor(name)
	if err != nil {
		fmt.Printf("Error: Unknown provider '%s'.\n", name)
		fmt.Printf("Available providers: %v\n", provider.Registered())
		return err
	}

	settings := providersCfg.MergedSettings(info)
	if settings.APIKey == "" {
		fmt.Printf("Error: %s environment variable is not set.\n", info.EnvKey)
		fmt.Println("Make sure your .env file is loaded or export the key manually.")
		return fmt.Errorf("%s is not set", info.EnvKey)
	}
	if warning := config.KeyFormatWarning(info.EnvKey, settings.APIKey); warning != "" {
		logger.Warn(warning)
	}

	if modelName != "" {
		settings.Model = modelName
	}
	if language != "" {
		settings.Language = language
	}
	if prompt != "" {
		settings.Prompt = prompt
	}

	transcriber, err := provider.Create(info.Name, settings)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	// History is best-effort; a broken store must not block transcription.
	db, err := app.InitializeHistoryDAO()
	if err != nil {
		logger.Warn("run history disabled", zap.Error(err))
		db = nil
	}

	model := settings.Model
	if model == "" {
		model = info.DefaultModel
	}

	c := converter.NewConverter(converter.Config{
		Transcriber: transcriber,
		Provider:    info,
		Model:       model,
		History:     db,
		Progress:    converter.ProgressConfig{Enabled: converter.ShouldShowProgress(false)},
		Logger:      logger,
	})
	defer c.Close()

	return c.Do(args[0])
}
