package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clip-whisper/internal/api/server"
	"clip-whisper/internal/app"
	"clip-whisper/internal/logging"
)

var (
	host       string
	port       string
	production bool
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "127.0.0.1", "address to bind")
	Cmd.Flags().StringVar(&port, "port", "8080", "port to listen on")
	Cmd.Flags().BoolVar(&production, "production", false, "release mode with JSON logs")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription HTTP API",
	Long: `Run the transcription HTTP API.

Exposes POST /api/v1/transcriptions for multipart uploads, run history,
the provider catalog, /health, /metrics and swagger docs. Stops
gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.NewLogger(!production)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		defer logger.Sync()

		cfg := server.DefaultConfig()
		cfg.Host = host
		cfg.Port = port
		if production {
			cfg.Environment = "production"
		}

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
